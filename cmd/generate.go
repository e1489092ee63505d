package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-comment-kit/internal/config"
	"github.com/shouni/go-comment-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、投稿 1 件から 4 トーン分のコメントを生成するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "AIに投稿へのコメントを生成させますなのだ。",
	Long: `投稿JSONを解析し、supportive / insightful / curious / professional の
4トーンすべてのコメントを生成するのだ。出力は結果JSONになるのだよ。`,
	RunE: generateCommand,
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.PostFile == "" && !isStdin() {
		return fmt.Errorf("ソース（--post-file または標準入力）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	if opts.AIModel != "" {
		cfg.GeminiModel = opts.AIModel
	}
	cfg.Options = opts

	slog.Info("コメント生成パイプラインを起動するのだ！",
		"tone", opts.Tone,
		"length", opts.Length,
		"model", cfg.GeminiModel,
		"output", opts.OutputFile)

	// 3. 更新した config を考慮しつつパイプラインを実行するのだ
	err := pipeline.Execute(ctx, cfg)
	if err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}

func isStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
