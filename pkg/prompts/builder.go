// Package prompts は、投稿コンテキストとユーザー選択から 1 トーン分の
// 指示文（プロンプト）を組み立てるのだ。節の並び順は固定で、
// 同じ入力からは常に同じプロンプトが生まれる純粋な構築器なのだ。
package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-comment-kit/pkg/domain"
)

// Builder はコメント生成用プロンプトの構築器です。状態を持ちません。
type Builder struct{}

// NewBuilder は新しい Builder を生成するのだ。
func NewBuilder() *Builder {
	return &Builder{}
}

// Build は 1 つの具象トーンに対する指示文を組み立てるのだ。
// includeImages が false のとき、画像の扱いに関する節は一切含めないのだ
// （画像なし再試行のときに使うのだ）。
func (b *Builder) Build(post domain.PostContent, tone domain.Tone, length domain.Length, includeImages bool) string {
	var sb strings.Builder

	sb.WriteString("You are replying to a social feed post. Write one comment responding to it.\n\n")

	// --- 投稿コンテキスト ---
	sb.WriteString("### POST ###\n")
	sb.WriteString(post.Text)
	sb.WriteString("\n\n### CONTEXT ###\n")

	if post.Author != "" {
		clause := fmt.Sprintf("- Author: %s", post.Author)
		if post.AuthorTitle != "" && post.AuthorCompany != "" {
			clause += fmt.Sprintf(" (%s at %s)", post.AuthorTitle, post.AuthorCompany)
		} else if post.AuthorTitle != "" {
			clause += fmt.Sprintf(" (%s)", post.AuthorTitle)
		} else if post.AuthorCompany != "" {
			clause += fmt.Sprintf(" (at %s)", post.AuthorCompany)
		}
		sb.WriteString(clause + "\n")
	}

	if post.PostType != "" {
		sb.WriteString(fmt.Sprintf("- Post type: %s\n", post.PostType))
	}
	if post.Timestamp != "" {
		sb.WriteString(fmt.Sprintf("- Posted: %s\n", post.Timestamp))
	}

	if includeImages && post.HasImages() {
		sb.WriteString("- The post has attached images, provided with this request. ")
		sb.WriteString("Weave any visual observations naturally into your comment. ")
		sb.WriteString("Never narrate them (\"the image shows...\"); react as a person who simply saw them.\n")
	}

	if post.URL != "" {
		sb.WriteString(fmt.Sprintf("- Source: %s\n", post.URL))
	}
	if len(post.Hashtags) > 0 {
		sb.WriteString(fmt.Sprintf("- Hashtags: %s\n", strings.Join(post.Hashtags, " ")))
	}
	if len(post.Mentions) > 0 {
		sb.WriteString(fmt.Sprintf("- Mentions: %s\n", strings.Join(post.Mentions, " ")))
	}
	if e := post.Engagement; e != nil && e.Total() > 0 {
		sb.WriteString(fmt.Sprintf("- Engagement so far: %d likes, %d comments, %d shares\n",
			e.Likes, e.Comments, e.Shares))
	}
	if looksProfessional(post) {
		sb.WriteString("- This looks like professional/business content; keep the register appropriate for a professional network.\n")
	}

	// --- 生成指示 ---
	sb.WriteString("\n### INSTRUCTIONS ###\n")
	sb.WriteString(fmt.Sprintf("- Length: %s sentences. %s\n", lengthSentenceRange[length], lengthDirective[length]))
	sb.WriteString(fmt.Sprintf("- %s\n", toneGuidance[tone]))
	sb.WriteString(fmt.Sprintf("- Structure: %s\n", structureGuidance[length]))
	sb.WriteString(fmt.Sprintf("- Emoji: %s\n", toneEmojiDirective[tone]))
	sb.WriteString("- Return only the comment text itself: no surrounding quotes, no labels, no preamble, no explanation.\n")

	return sb.String()
}

// looksProfessional は、本文キーワードか肩書き+所属の有無から
// ビジネス色の強い投稿かどうかを雑に見分けるヒューリスティックなのだ。
func looksProfessional(post domain.PostContent) bool {
	if post.AuthorTitle != "" && post.AuthorCompany != "" {
		return true
	}
	text := strings.ToLower(post.Text)
	for _, kw := range professionalKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
