package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shouni/go-comment-kit/internal/config"
	"github.com/shouni/go-comment-kit/pkg/domain"
	"github.com/shouni/go-comment-kit/pkg/pipeline"
)

// CommentRunner は、投稿 JSON の読み込みからコメント生成、結果の書き出しまでを
// 一気通貫で実行する核となる構造体なのだ。
type CommentRunner struct {
	opts config.GenerateOptions // 実行時のコマンドライン引数や設定
	orch *pipeline.Orchestrator // コメント生成パイプラインの司令塔
}

// NewCommentRunner は、CommentRunnerの新しいインスタンスを生成して返すのだ。
func NewCommentRunner(opts config.GenerateOptions, orch *pipeline.Orchestrator) *CommentRunner {
	return &CommentRunner{
		opts: opts,
		orch: orch,
	}
}

// Run は、入力の読み込み、オプションの解釈、生成、結果の書き出しを一気に行うのだ。
func (cr *CommentRunner) Run(ctx context.Context) error {
	// 1. 入力ソース（ファイル または 標準入力）から投稿を読み込むのだ
	post, err := cr.readPost()
	if err != nil {
		return err
	}

	// 2. CLI フラグをトーンと長さに変換するのだ
	opts, err := cr.parseOptions()
	if err != nil {
		return err
	}

	// 3. パイプラインを回して 4 トーン分のコメントを作るのだ
	resp, err := cr.orch.GenerateComments(ctx, post, opts)
	if err != nil {
		return fmt.Errorf("コメントの生成に失敗したのだ: %w", err)
	}

	// 4. 結果を JSON として書き出すのだ
	return cr.writeResponse(resp)
}

// readPost は、パスの設定に基づいてファイルまたは標準入力から投稿 JSON を読むのだ。
func (cr *CommentRunner) readPost() (domain.PostContent, error) {
	var r io.Reader = os.Stdin
	if cr.opts.PostFile != "" {
		f, err := os.Open(cr.opts.PostFile)
		if err != nil {
			return domain.PostContent{}, fmt.Errorf("投稿ファイルを開けないのだ: %w", err)
		}
		defer f.Close()
		r = f
	}

	var post domain.PostContent
	if err := json.NewDecoder(r).Decode(&post); err != nil {
		return domain.PostContent{}, fmt.Errorf("投稿JSONのパースに失敗したのだ: %w", err)
	}
	return post, nil
}

// parseOptions は CLI フラグの文字列をドメインの列挙型に変換するのだ。
func (cr *CommentRunner) parseOptions() (domain.CommentOptions, error) {
	tone, err := domain.ParseTone(cr.opts.Tone)
	if err != nil {
		return domain.CommentOptions{}, err
	}
	length, err := domain.ParseLength(cr.opts.Length)
	if err != nil {
		return domain.CommentOptions{}, err
	}
	return domain.CommentOptions{Tone: tone, Length: length}, nil
}

// writeResponse は結果をインデント付き JSON でファイルまたは標準出力に書くのだ。
func (cr *CommentRunner) writeResponse(resp *domain.CommentResponse) error {
	var w io.Writer = os.Stdout
	if cr.opts.OutputFile != "" {
		f, err := os.Create(cr.opts.OutputFile)
		if err != nil {
			return fmt.Errorf("出力ファイルを作れないのだ: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("結果JSONの書き出しに失敗したのだ: %w", err)
	}
	return nil
}
