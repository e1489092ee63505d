// Package pipeline は、投稿 1 件から 4 トーン分のコメントを組み立てる
// オーケストレーターなのだ。クレデンシャル検証・言語判定・画像取得を
// 一度だけ行い、トーンごとの生成はペーシングをかけつつ並列に流すのだ。
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/shouni/go-comment-kit/pkg/domain"
	"github.com/shouni/go-comment-kit/pkg/fallback"
	"github.com/shouni/go-comment-kit/pkg/format"
	"github.com/shouni/go-comment-kit/pkg/images"
	"github.com/shouni/go-comment-kit/pkg/language"
)

// DefaultPaceInterval は生成 API 呼び出し同士の最小間隔なのだ。
const DefaultPaceInterval = 200 * time.Millisecond

// CredentialStore は API クレデンシャルの取得と検証を抽象化するのだ。
// 設定欠如なら ErrCredentialMissing、形式不正なら ErrCredentialInvalid を
// 返す実装を期待するのだ。
type CredentialStore interface {
	APIKey(ctx context.Context) (string, error)
}

// Orchestrator はコメント生成の全工程をまとめる司令塔なのだ。
type Orchestrator struct {
	creds      CredentialStore
	acquirer   *images.Acquirer
	controller *fallback.Controller
	limiter    *rate.Limiter
	maxWidth   int
}

// New は Orchestrator を生成するのだ。acquirer は nil でもよく、その場合は
// 画像を一切取得しないテキスト専用の構成になるのだ。interval が 0 以下なら
// ペーシングなしで動くのだ。
func New(creds CredentialStore, acquirer *images.Acquirer, controller *fallback.Controller, interval time.Duration, maxWidth int) *Orchestrator {
	var limiter *rate.Limiter
	if interval > 0 {
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	if maxWidth <= 0 {
		maxWidth = images.DefaultMaxWidth
	}
	return &Orchestrator{
		creds:      creds,
		acquirer:   acquirer,
		controller: controller,
		limiter:    limiter,
		maxWidth:   maxWidth,
	}
}

// GenerateComments は投稿 1 件から 4 トーンすべてのコメントを生成するのだ。
// 戻り値のレスポンスは常に 4 トーン分が埋まっているのだ。エラーを返すのは
// クレデンシャル検証に落ちたときだけで、生成の失敗はトーン単位で定型文に
// 縮退し、他のトーンには波及しないのだ。
func (o *Orchestrator) GenerateComments(ctx context.Context, post domain.PostContent, opts domain.CommentOptions) (*domain.CommentResponse, error) {
	if _, err := o.creds.APIKey(ctx); err != nil {
		return nil, err
	}

	lang := language.Detect(post.Text)
	requested := opts.ConcreteTones()

	// 画像は全トーンで共有するので、取得は 1 回だけなのだ
	var imgs []images.Part
	if o.acquirer != nil && post.HasImages() {
		imgs = o.acquirer.AcquireBatch(ctx, post.Images, o.maxWidth)
	}

	slog.Info("コメント生成を開始するのだ",
		"language", lang,
		"images", len(imgs),
		"length", opts.Length,
		"requested_tones", len(requested),
	)

	tones := domain.AllTones()
	texts := make([]string, len(tones))
	fellBack := make([]bool, len(tones))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, tone := range tones {
		i, tone := i, tone

		// 依頼されなかったトーンは生成 API を呼ばず定型文で埋めるのだ
		if !requested[tone] {
			texts[i] = fallback.Template(tone, post.Text, lang)
			fellBack[i] = true
			continue
		}

		eg.Go(func() error {
			if o.limiter != nil {
				if err := o.limiter.Wait(egCtx); err != nil {
					slog.Warn("ペーシング待機が中断されたのだ", "tone", tone, "error", err)
					texts[i] = fallback.Template(tone, post.Text, lang)
					fellBack[i] = true
					return nil
				}
			}
			texts[i], fellBack[i] = o.controller.GenerateTone(egCtx, post, tone, opts.Length, imgs, lang)
			return nil
		})
	}

	// ワーカーは常に nil を返すので Wait のエラーは起き得ないのだ
	_ = eg.Wait()

	resp := &domain.CommentResponse{}
	for i, tone := range tones {
		resp.Set(tone, format.Format(texts[i], tone, opts.Length))
		if fellBack[i] {
			resp.MarkFallback(tone)
		}
	}
	return resp, nil
}
