package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel        = "gemini-2.5-flash"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultPaceInterval = 200 * time.Millisecond
	DefaultCacheTTL     = 10 * time.Minute
	DefaultMaxWidth     = 800
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey string
	GeminiModel  string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:  envutil.GetEnv("GEMINI_MODEL", DefaultModel),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	PostFile   string // --post-file: 投稿 JSON のパス（省略時は標準入力）
	OutputFile string // --output-file: 結果 JSON の保存先（省略時は標準出力）

	// 生成挙動設定
	Tone    string // --tone: supportive / insightful / curious / professional / all
	Length  string // --length: very_short / short / medium / long / very_long
	AIModel string // --model: テキスト生成用のGeminiモデル

	// 実行制御
	HTTPTimeout  time.Duration // --http-timeout
	PaceInterval time.Duration // --pace-interval: 生成 API 呼び出しの最小間隔
	MaxWidth     int           // --max-width: 取得画像の最大幅（px）
	NoImages     bool          // --no-images: 画像取得を丸ごと無効化
}
