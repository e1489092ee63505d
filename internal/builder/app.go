package builder

import (
	"github.com/shouni/go-comment-kit/internal/config"

	"github.com/shouni/go-http-kit/httpkit"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config     *config.Config          // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、モデル名など）。
	Options    config.GenerateOptions  // Optionsは、コマンドラインから渡された実行時の設定です（トーン、長さ、入出力パスなど）。
	httpClient httpkit.HTTPClient // httpClient は画像取得など外部との通信に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(cfg *config.Config, httpClient httpkit.HTTPClient) AppContext {
	return AppContext{
		Config:     cfg,
		Options:    cfg.Options,
		httpClient: httpClient,
	}
}
