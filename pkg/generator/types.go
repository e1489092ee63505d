package generator

import (
	"context"
	"fmt"

	"github.com/shouni/go-comment-kit/pkg/domain"
	"github.com/shouni/go-comment-kit/pkg/images"
)

// TextGenerator は 1 トーン分のコメントを生成するクライアントのインターフェースです。
// テストではフェイク実装に差し替えます。
type TextGenerator interface {
	// Generate はプロンプトと画像パート群からコメント本文を生成するのだ。
	// 失敗時は *ProviderError（またはそれをラップしたエラー）を返すのだ。
	Generate(ctx context.Context, prompt string, imgs []images.Part, length domain.Length) (string, error)
}

// ProviderError は生成プロバイダー由来の失敗を表す型付きエラーです。
// HTTP ステータスと応答本文（あるいはエラーメッセージ）を診断用に保持します。
type ProviderError struct {
	Status    int
	Body      string
	Malformed bool // 応答の形状が想定外だったとき true
}

func (e *ProviderError) Error() string {
	if e.Malformed {
		return fmt.Sprintf("provider response malformed: %s", e.Body)
	}
	return fmt.Sprintf("provider request failed (status=%d): %s", e.Status, e.Body)
}
