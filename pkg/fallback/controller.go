// Package fallback は、トーンごとの生成失敗を「画像なし再試行」と
// 「定型文への縮退」で吸収するコントローラーなのだ。
// どの経路を通っても必ず文字列を返し、1 トーンの失敗が他のトーンに
// 波及しないことを保証するのが責務なのだ。
package fallback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shouni/go-comment-kit/pkg/domain"
	"github.com/shouni/go-comment-kit/pkg/generator"
	"github.com/shouni/go-comment-kit/pkg/images"
	"github.com/shouni/go-comment-kit/pkg/prompts"
)

// imageErrorMarkers は「画像が原因っぽい」失敗を見分ける目印なのだ。
// あくまで文字列一致のベストエフォート分類であって、網羅は保証しないのだ。
var imageErrorMarkers = []string{"image", "multimodal", "binary data"}

// Controller はプロンプト構築と生成クライアント呼び出しを 1 トーン分
// ラップし、失敗時の縮退経路を受け持つのだ。
type Controller struct {
	gen     generator.TextGenerator
	builder *prompts.Builder
}

// NewController は新しい Controller を生成するのだ。
func NewController(gen generator.TextGenerator, builder *prompts.Builder) *Controller {
	return &Controller{gen: gen, builder: builder}
}

// GenerateTone は 1 トーン分のコメントを生成するのだ。戻り値は
// (本文, 定型文フォールバックを使ったか) で、エラーは返さないのだ。
//
// 状態遷移: 画像付きリクエスト成功 → 本文
//   | 画像関連の失敗 → 画像なしで 1 回だけ再試行 → 成功なら本文
//   | それ以外の失敗・再試行の失敗 → 定型文
func (c *Controller) GenerateTone(
	ctx context.Context,
	post domain.PostContent,
	tone domain.Tone,
	length domain.Length,
	imgs []images.Part,
	lang string,
) (string, bool) {
	prompt := c.builder.Build(post, tone, length, len(imgs) > 0)

	text, err := c.gen.Generate(ctx, prompt, imgs, length)
	if err == nil {
		return text, false
	}
	slog.Warn("コメント生成に失敗したのだ", "tone", tone, "error", err)

	// 画像が原因らしき失敗だけ、画像抜きでもう一度だけ試すのだ
	if len(imgs) > 0 && IsImageRelated(err) {
		slog.Info("画像なしで再試行するのだ", "tone", tone)
		retryPrompt := c.builder.Build(post, tone, length, false)
		text, err = c.gen.Generate(ctx, retryPrompt, nil, length)
		if err == nil {
			return text, false
		}
		slog.Warn("画像なし再試行も失敗したのだ", "tone", tone, "error", err)
	}

	slog.Warn("定型文フォールバックに縮退するのだ", "tone", tone)
	return Template(tone, post.Text, lang), true
}

// IsImageRelated はエラーメッセージから画像関連の失敗かどうかを推定するのだ。
func IsImageRelated(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range imageErrorMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
