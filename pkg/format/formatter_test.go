package format

import (
	"strings"
	"testing"

	"github.com/shouni/go-comment-kit/pkg/domain"
)

func TestFormat_Idempotence(t *testing.T) {
	inputs := []string{
		"Great insight! This changes everything. Thanks for sharing.",
		"• first point\n•second point\n* third point",
		"Congrats!",
		"Multiple   sentences. Here we go. Another one follows. And more.",
		"already has emoji 👏 so nothing changes. Right.",
		"",
		"-tight bullet\n- loose bullet",
	}

	for _, tone := range domain.AllTones() {
		for _, length := range domain.AllLengths() {
			for _, in := range inputs {
				once := Format(in, tone, length)
				twice := Format(once, tone, length)
				if once != twice {
					t.Errorf("冪等ではないのだ (tone=%s length=%s):\n1回目: %q\n2回目: %q",
						tone, length, once, twice)
				}
			}
		}
	}
}

func TestFormat_VeryShortIsUntouched(t *testing.T) {
	t.Run("very_short は後処理を完全にスキップするのだ", func(t *testing.T) {
		in := "• raw bullet. Next sentence"
		if got := Format(in, domain.ToneSupportive, domain.LengthVeryShort); got != in {
			t.Errorf("very_short が書き換えられているのだ: %q", got)
		}
	})
}

func TestFormat_Bullets(t *testing.T) {
	t.Run("箇条書き記号はダッシュに揃うのだ", func(t *testing.T) {
		got := Format("• point one\n‣point two\n* point three", domain.ToneProfessional, domain.LengthShort)
		for _, line := range strings.Split(got, "\n") {
			if line == "" {
				continue
			}
			if !strings.HasPrefix(line, "- ") && !strings.Contains(line, "📌") &&
				!strings.Contains(line, "🤝") && !strings.Contains(line, "📊") {
				t.Errorf("ダッシュ始まりでない行があるのだ: %q", line)
			}
		}
		if strings.Contains(got, "•") || strings.Contains(got, "‣") || strings.Contains(got, "*") {
			t.Errorf("元の記号が残っているのだ: %q", got)
		}
	})

	t.Run("ダッシュ直後にスペースが入るのだ", func(t *testing.T) {
		got := Format("-tight bullet here", domain.ToneProfessional, domain.LengthShort)
		if !strings.HasPrefix(got, "- tight") {
			t.Errorf("スペースが補われていないのだ: %q", got)
		}
	})
}

func TestFormat_ParagraphBreaks(t *testing.T) {
	t.Run("medium 以上は文の継ぎ目で段落が割れるのだ", func(t *testing.T) {
		got := Format("First point here. Second point there.", domain.ToneProfessional, domain.LengthMedium)
		if !strings.Contains(got, "here.\n\nSecond") {
			t.Errorf("段落が割れていないのだ: %q", got)
		}
	})

	t.Run("short では段落を割らないのだ", func(t *testing.T) {
		got := Format("First point here. Second point there.", domain.ToneProfessional, domain.LengthShort)
		if strings.Contains(got, "\n\n") {
			t.Errorf("short なのに段落が割れているのだ: %q", got)
		}
	})

	t.Run("3 連以上の改行は空行 1 つに潰れるのだ", func(t *testing.T) {
		got := Format("Paragraph one.\n\n\n\nParagraph two continues", domain.ToneProfessional, domain.LengthLong)
		if strings.Contains(got, "\n\n\n") {
			t.Errorf("改行が潰れていないのだ: %q", got)
		}
	})

	t.Run("小文字始まりの略語では割らないのだ", func(t *testing.T) {
		got := Format("We improved perf. by 20x overall", domain.ToneProfessional, domain.LengthMedium)
		if strings.Contains(got, "\n\n") {
			t.Errorf("略語の後で段落が割れているのだ: %q", got)
		}
	})
}

func TestFormat_EmojiInjection(t *testing.T) {
	t.Run("絵文字がなければトーン相応の 1 つが注入されるのだ", func(t *testing.T) {
		got := Format("Solid analysis of the market shift", domain.ToneInsightful, domain.LengthShort)
		found := 0
		for _, e := range []string{"💡", "🎯", "📈", "🔍"} {
			found += strings.Count(got, e)
		}
		if found != 1 {
			t.Errorf("insightful パレットの絵文字がちょうど 1 つのはずが %d 個なのだ: %q", found, got)
		}
	})

	t.Run("すでに絵文字があれば何も足さないのだ", func(t *testing.T) {
		in := "Already celebrating 🎉 over here"
		got := Format(in, domain.ToneSupportive, domain.LengthShort)
		if got != in {
			t.Errorf("絵文字入り本文が書き換えられたのだ: %q", got)
		}
	})

	t.Run("short は末尾句読点の手前に挿入されるのだ", func(t *testing.T) {
		got := Format("Nice work on this launch.", domain.ToneSupportive, domain.LengthShort)
		if !strings.HasSuffix(got, ".") {
			t.Errorf("末尾の句読点が保たれていないのだ: %q", got)
		}
		trimmed := strings.TrimSuffix(got, ".")
		hasTail := false
		for _, e := range []string{"👏", "🙌", "💪", "✨"} {
			if strings.HasSuffix(trimmed, e) {
				hasTail = true
			}
		}
		if !hasTail {
			t.Errorf("句読点の手前に絵文字がないのだ: %q", got)
		}
	})

	t.Run("medium 以上は先頭か末尾のどちらかに置かれるのだ", func(t *testing.T) {
		got := Format("Thoughtful take on the announcement", domain.ToneCurious, domain.LengthLong)
		palette := []string{"🤔", "💭", "🌱", "🧭"}
		atHead, atTail := false, false
		for _, e := range palette {
			if strings.HasPrefix(got, e) {
				atHead = true
			}
			if strings.HasSuffix(got, e) {
				atTail = true
			}
		}
		if !atHead && !atTail {
			t.Errorf("絵文字が先頭にも末尾にもないのだ: %q", got)
		}
	})

	t.Run("注入位置と絵文字は決定論的なのだ", func(t *testing.T) {
		a := Format("Deterministic emoji placement check", domain.ToneCurious, domain.LengthMedium)
		b := Format("Deterministic emoji placement check", domain.ToneCurious, domain.LengthMedium)
		if a != b {
			t.Errorf("結果が揺れているのだ: %q != %q", a, b)
		}
	})
}

func TestFormat_WordContentPreserved(t *testing.T) {
	t.Run("単語の中身は変わらないのだ", func(t *testing.T) {
		in := "Great launch. Congrats to the team. Onwards and upwards."
		got := Format(in, domain.ToneSupportive, domain.LengthMedium)
		for _, word := range []string{"Great", "launch", "Congrats", "team", "Onwards", "upwards"} {
			if !strings.Contains(got, word) {
				t.Errorf("単語 %q が失われたのだ: %q", word, got)
			}
		}
	})
}
