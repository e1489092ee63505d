package prompts

import (
	"strings"
	"testing"

	"github.com/shouni/go-comment-kit/pkg/domain"
)

func samplePost() domain.PostContent {
	return domain.PostContent{
		Text:          "Excited to announce our Series A funding for our AI startup",
		Author:        "Jane Doe",
		AuthorTitle:   "CEO",
		AuthorCompany: "Acme AI",
		Images:        []string{"https://example.com/deck.png"},
		Hashtags:      []string{"#AI", "#funding"},
		Engagement:    &domain.Engagement{Likes: 120, Comments: 14, Shares: 9},
		PostType:      domain.PostTypeText,
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder()

	t.Run("投稿コンテキストが各節に反映されるのだ", func(t *testing.T) {
		prompt := b.Build(samplePost(), domain.ToneInsightful, domain.LengthMedium, true)

		for _, want := range []string{
			"Jane Doe (CEO at Acme AI)",
			"Excited to announce our Series A funding",
			"#AI #funding",
			"120 likes, 14 comments, 9 shares",
			"professional/business content",
			"3-4 sentences",
			"Tone: insightful",
			"no surrounding quotes",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("プロンプトに %q が含まれていないのだ", want)
			}
		}
	})

	t.Run("画像節は includeImages で切り替わるのだ", func(t *testing.T) {
		withImages := b.Build(samplePost(), domain.ToneSupportive, domain.LengthShort, true)
		withoutImages := b.Build(samplePost(), domain.ToneSupportive, domain.LengthShort, false)

		if !strings.Contains(withImages, "attached images") {
			t.Error("画像ありプロンプトに画像節がないのだ")
		}
		if strings.Contains(withoutImages, "attached images") {
			t.Error("画像なし再試行のプロンプトに画像節が残っているのだ")
		}
	})

	t.Run("画像のない投稿には画像節が出ないのだ", func(t *testing.T) {
		post := samplePost()
		post.Images = nil
		prompt := b.Build(post, domain.ToneCurious, domain.LengthLong, true)
		if strings.Contains(prompt, "attached images") {
			t.Error("画像がないのに画像節が出ているのだ")
		}
	})

	t.Run("長さ指定ごとに文数レンジが変わるのだ", func(t *testing.T) {
		wants := map[domain.Length]string{
			domain.LengthVeryShort: "1-2 sentences",
			domain.LengthShort:     "2-3 sentences",
			domain.LengthMedium:    "3-4 sentences",
			domain.LengthLong:      "4-6 sentences",
			domain.LengthVeryLong:  "6-8 sentences",
		}
		for length, want := range wants {
			prompt := b.Build(samplePost(), domain.ToneProfessional, length, false)
			if !strings.Contains(prompt, want) {
				t.Errorf("長さ %s のプロンプトに %q がないのだ", length, want)
			}
		}
	})

	t.Run("同じ入力からは同じプロンプトなのだ", func(t *testing.T) {
		a := b.Build(samplePost(), domain.ToneCurious, domain.LengthMedium, true)
		c := b.Build(samplePost(), domain.ToneCurious, domain.LengthMedium, true)
		if a != c {
			t.Error("プロンプト構築が決定論的ではないのだ")
		}
	})
}

func TestLooksProfessional(t *testing.T) {
	t.Run("キーワードでビジネス投稿と判定するのだ", func(t *testing.T) {
		post := domain.PostContent{Text: "We just closed our seed funding round!"}
		if !looksProfessional(post) {
			t.Error("funding を含む投稿はビジネス扱いのはずなのだ")
		}
	})

	t.Run("肩書きと所属が揃えばビジネス投稿なのだ", func(t *testing.T) {
		post := domain.PostContent{Text: "Lovely morning walk", AuthorTitle: "CTO", AuthorCompany: "Example Inc"}
		if !looksProfessional(post) {
			t.Error("肩書き+所属はビジネス扱いのはずなのだ")
		}
	})

	t.Run("日常投稿はビジネス扱いしないのだ", func(t *testing.T) {
		post := domain.PostContent{Text: "Lovely morning walk with the dog"}
		if looksProfessional(post) {
			t.Error("日常投稿がビジネス扱いされているのだ")
		}
	})
}
