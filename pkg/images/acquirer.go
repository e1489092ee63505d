// Package images は投稿に添付された画像の取得・検証・縮小・エンコードを担うのだ。
// どの段階で失敗しても呼び出し元へはエラーではなく nil を返し、
// 「その画像を省いて生成を続ける」縮退を成立させるのが責務なのだ。
package images

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultFetchTimeout は画像 1 枚あたりの取得タイムアウトなのだ。
	DefaultFetchTimeout = 5 * time.Second
	// DefaultMaxWidth は縮小後の横幅上限（px）なのだ。
	DefaultMaxWidth = 800
	// MaxImagesPerPost は 1 投稿あたりに処理する画像の上限なのだ。
	MaxImagesPerPost = 5
	// minPayloadBytes 未満の応答はトラッキングピクセル等とみなして弾くのだ。
	minPayloadBytes = 100
	// maxReadBytes は読み込みの安全上限なのだ。
	maxReadBytes = 20 << 20 // 20MB
)

// Part は生成リクエストに添付する画像 1 枚分のペイロードです。
type Part struct {
	MimeType string
	Data     string // base64
}

// Doer は HTTP リクエストを実行できるクライアントの最小インターフェースです。
// go-http-kit のクライアントがこれを満たします。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Acquirer は画像取得サービスの実体で、キャッシュと HTTP クライアントを
// フィールドとして所有する明示的に構築可能なオブジェクトです。
type Acquirer struct {
	client       Doer
	cache        *BoundedCache
	fetchTimeout time.Duration
}

// NewAcquirer は新しい Acquirer を生成するのだ。
// fetchTimeout に 0 以下を渡すと既定の 5 秒になるのだ。
func NewAcquirer(client Doer, c *BoundedCache, fetchTimeout time.Duration) *Acquirer {
	if c == nil {
		c = NewBoundedCache(DefaultCacheTTL, DefaultCacheMaxEntries, DefaultEvictBatch)
	}
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &Acquirer{
		client:       client,
		cache:        c,
		fetchTimeout: fetchTimeout,
	}
}

// Acquire は 1 枚の画像を取得して base64 ペイロードに変換するのだ。
// キャッシュヒット・URL 検証・取得・検証・縮小・格納の順で進み、
// どこで失敗しても nil を返すだけで決してエラーを外へ出さないのだ。
func (a *Acquirer) Acquire(ctx context.Context, rawURL string, maxWidth int) *Part {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	// 1. キャッシュ確認
	if entry, ok := a.cache.Get(rawURL, maxWidth); ok {
		return &Part{MimeType: entry.MimeType, Data: entry.Data}
	}

	// 2. URL 構文検証
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		slog.Warn("画像URLが不正なので省くのだ", "url", rawURL)
		return nil
	}

	// 3. タイムアウト付き取得
	data, mimeType, ok := a.fetch(ctx, rawURL)
	if !ok {
		return nil
	}

	// 4. 縮小と再エンコード（失敗時は元バイト列のまま）
	data, mimeType = shrinkToWidth(data, mimeType, maxWidth)

	// 5. base64 化してキャッシュへ
	encoded := base64.StdEncoding.EncodeToString(data)
	a.cache.Put(rawURL, maxWidth, Entry{
		MimeType:  mimeType,
		Data:      encoded,
		Timestamp: time.Now(),
	})

	return &Part{MimeType: mimeType, Data: encoded}
}

// AcquireBatch は投稿の画像 URL 群を並行取得するのだ。
// 1 投稿あたり MaxImagesPerPost 枚で打ち切り、取得できた分だけを
// 元の順序を保って返すのだ。個々の失敗はバッチを止めないのだ。
func (a *Acquirer) AcquireBatch(ctx context.Context, urls []string, maxWidth int) []Part {
	if len(urls) > MaxImagesPerPost {
		slog.Info("画像数に上限を適用したのだ", "limit", MaxImagesPerPost, "total", len(urls))
		urls = urls[:MaxImagesPerPost]
	}

	results := make([]*Part, len(urls))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(MaxImagesPerPost)

	for i, u := range urls {
		i, u := i, u
		eg.Go(func() error {
			// 失敗は nil のまま埋め、エラーとしては返さないのだ
			results[i] = a.Acquire(egCtx, u, maxWidth)
			return nil
		})
	}
	_ = eg.Wait()

	parts := make([]Part, 0, len(results))
	for _, p := range results {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	return parts
}

// fetch は HTTP 取得とステータス・種別・サイズの検証を行うのだ。
func (a *Acquirer) fetch(ctx context.Context, rawURL string) ([]byte, string, bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		slog.Warn("画像リクエストの生成に失敗したのだ", "url", rawURL, "error", err)
		return nil, "", false
	}

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Warn("画像の取得に失敗したのだ", "url", rawURL, "error", err)
		return nil, "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("画像の応答ステータスが不正なのだ", "url", rawURL, "status", resp.StatusCode)
		return nil, "", false
	}

	mimeType := resp.Header.Get("Content-Type")
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	if !strings.HasPrefix(mimeType, "image/") {
		slog.Warn("画像ではないコンテンツなので省くのだ", "url", rawURL, "content_type", mimeType)
		return nil, "", false
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReadBytes))
	if err != nil {
		slog.Warn("画像本文の読み込みに失敗したのだ", "url", rawURL, "error", err)
		return nil, "", false
	}

	if len(data) < minPayloadBytes {
		slog.Warn("画像が小さすぎるので省くのだ（トラッキングピクセル対策）", "url", rawURL, "bytes", len(data))
		return nil, "", false
	}

	return data, mimeType, true
}
