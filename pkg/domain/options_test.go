package domain

import "testing"

func TestParseTone(t *testing.T) {
	t.Run("有効なトーンはそのまま解釈されるのだ", func(t *testing.T) {
		for _, s := range []string{"supportive", "insightful", "curious", "professional", "all"} {
			tone, err := ParseTone(s)
			if err != nil {
				t.Fatalf("'%s' の解釈に失敗したのだ: %v", s, err)
			}
			if string(tone) != s {
				t.Errorf("期待: %s, 実際: %s", s, tone)
			}
		}
	})

	t.Run("大文字や前後空白は正規化されるのだ", func(t *testing.T) {
		tone, err := ParseTone("  Supportive ")
		if err != nil {
			t.Fatalf("解釈に失敗したのだ: %v", err)
		}
		if tone != ToneSupportive {
			t.Errorf("期待: %s, 実際: %s", ToneSupportive, tone)
		}
	})

	t.Run("未知のトーンはエラーなのだ", func(t *testing.T) {
		if _, err := ParseTone("sarcastic"); err == nil {
			t.Error("エラーが返るべきなのだ")
		}
	})
}

func TestCommentOptions_ConcreteTones(t *testing.T) {
	t.Run("all は 4 トーンに展開されるのだ", func(t *testing.T) {
		requested := CommentOptions{Tone: ToneAll, Length: LengthMedium}.ConcreteTones()
		if len(requested) != 4 {
			t.Fatalf("4 トーンのはずが %d トーンなのだ", len(requested))
		}
		for _, tone := range AllTones() {
			if !requested[tone] {
				t.Errorf("トーン %s が含まれていないのだ", tone)
			}
		}
	})

	t.Run("単一トーン指定はそのトーンだけが要求されるのだ", func(t *testing.T) {
		requested := CommentOptions{Tone: ToneCurious, Length: LengthShort}.ConcreteTones()
		if len(requested) != 1 || !requested[ToneCurious] {
			t.Errorf("curious のみのはずなのだ: %+v", requested)
		}
	})
}

func TestStableHash(t *testing.T) {
	t.Run("同一入力は常に同一ハッシュなのだ", func(t *testing.T) {
		a := StableHash("Excited to announce our Series A funding")
		b := StableHash("Excited to announce our Series A funding")
		if a != b {
			t.Errorf("再現性がないのだ: %d != %d", a, b)
		}
	})

	t.Run("異なる入力は（ほぼ確実に）異なるハッシュなのだ", func(t *testing.T) {
		if StableHash("a") == StableHash("b") {
			t.Error("衝突しているのだ")
		}
	})
}
