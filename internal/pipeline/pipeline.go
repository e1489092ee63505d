// Package pipeline は CLI コマンドとアプリケーション本体をつなぐ
// 実行エントリーポイントなのだ。
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comment-kit/internal/builder"
	"github.com/shouni/go-comment-kit/internal/config"

	"github.com/shouni/go-http-kit/httpkit"
)

// Execute は、設定からアプリケーションコンテキストを組み立て、
// コメント生成 Runner を一度だけ実行するのだ。
func Execute(ctx context.Context, cfg *config.Config) error {
	appCtx := setupAppContext(cfg)

	commentRunner, err := builder.BuildCommentRunner(ctx, appCtx)
	if err != nil {
		return fmt.Errorf("CommentRunnerの構築に失敗したのだ: %w", err)
	}

	if err := commentRunner.Run(ctx); err != nil {
		return err
	}

	slog.Info("コメント生成が完了したのだ！")
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、
// アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(cfg *config.Config) *builder.AppContext {
	timeout := cfg.Options.HTTPTimeout
	if timeout <= 0 {
		timeout = config.DefaultHTTPTimeout
	}
	httpClient := httpkit.New(timeout)

	appCtx := builder.NewAppContext(cfg, httpClient)
	return &appCtx
}
