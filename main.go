package main

import (
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/shouni/go-comment-kit/cmd"
)

// main はアプリケーションの唯一のエントリーポイントなのだ！
// コマンドライン引数の解析と実行はすべて cmd パッケージに委ねるのだよ。
func main() {
	// .env はあれば読む、なければ環境変数だけで動くのだ
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env が見つからないので環境変数のみで続行するのだ")
	}

	cmd.Execute()
}
