package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-comment-kit/internal/config"
	"github.com/shouni/go-comment-kit/internal/runner"
	"github.com/shouni/go-comment-kit/pkg/fallback"
	"github.com/shouni/go-comment-kit/pkg/generator"
	"github.com/shouni/go-comment-kit/pkg/images"
	"github.com/shouni/go-comment-kit/pkg/pipeline"
	"github.com/shouni/go-comment-kit/pkg/prompts"
)

// BuildCommentRunner はコメント生成一式を担当する Runner を構築します。
func BuildCommentRunner(ctx context.Context, appCtx *AppContext) (*runner.CommentRunner, error) {
	orch, err := buildOrchestrator(ctx, appCtx)
	if err != nil {
		return nil, err
	}
	return runner.NewCommentRunner(appCtx.Options, orch), nil
}

// buildOrchestrator はクレデンシャル検証から各コンポーネントの組み立てまでを行うのだ。
func buildOrchestrator(ctx context.Context, appCtx *AppContext) (*pipeline.Orchestrator, error) {
	creds := config.NewEnvCredentialStore(appCtx.Config)

	apiKey, err := creds.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	model := appCtx.Config.GeminiModel
	if appCtx.Options.AIModel != "" {
		model = appCtx.Options.AIModel
	}

	gen, err := generator.NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}

	controller := fallback.NewController(gen, prompts.NewBuilder())

	// --no-images のときは画像コンポーネントを組み立てず、
	// オーケストレーターにはテキスト専用で動いてもらうのだ
	var acquirer *images.Acquirer
	if !appCtx.Options.NoImages {
		cache := images.NewBoundedCache(config.DefaultCacheTTL, images.DefaultCacheMaxEntries, images.DefaultEvictBatch)
		acquirer = images.NewAcquirer(appCtx.httpClient, cache, images.DefaultFetchTimeout)
	}

	interval := appCtx.Options.PaceInterval
	if interval == 0 {
		interval = config.DefaultPaceInterval
	}

	return pipeline.New(creds, acquirer, controller, interval, appCtx.Options.MaxWidth), nil
}
