package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-comment-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は CLI フラグの受け皿なのだ。各サブコマンドから共有されるのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力・出力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.PostFile, "post-file", "f", "", "投稿JSONのパス（省略時は標準入力なのだ）。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", "", "結果JSONの保存先（省略時は標準出力なのだ）。")

	// --- 生成挙動設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Tone, "tone", "t", "all", "コメントのトーン（supportive / insightful / curious / professional / all）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Length, "length", "l", "medium", "コメントの長さ（very_short / short / medium / long / very_long）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "使用する Gemini モデル名なのだ。")

	// --- 実行制御 ---
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.PaceInterval, "pace-interval", config.DefaultPaceInterval, "生成API呼び出しの最小間隔なのだ。")
	rootCmd.PersistentFlags().IntVar(&opts.MaxWidth, "max-width", config.DefaultMaxWidth, "取得画像の最大幅（px）なのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.NoImages, "no-images", false, "画像の取得と添付を無効化するのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-comment-go",
		addAppFlags,
		preRunAppE,
		generateCmd,
	)
}
