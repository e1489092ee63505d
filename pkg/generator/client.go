// Package generator は Gemini API へのトーン別コメント生成リクエストを担うのだ。
// 1 トーンにつき 1 リクエスト、テキストプロンプト + 画像パートの単一ターン構成なのだ。
package generator

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-comment-kit/pkg/domain"
	"github.com/shouni/go-comment-kit/pkg/images"

	"google.golang.org/genai"
)

// GeminiClient は google.golang.org/genai を使う TextGenerator の実装です。
type GeminiClient struct {
	client *genai.Client
	model  string
}

// コンパイル時のインターフェース充足チェックなのだ
var _ TextGenerator = (*GeminiClient)(nil)

// NewGeminiClient は Gemini クライアントを初期化します。
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Generate は単一ターンのリクエストを発行し、最初の候補の最初の
// テキストパートを取り出して返すのだ。囲みクォートは剥がすのだ。
func (c *GeminiClient) Generate(ctx context.Context, prompt string, imgs []images.Part, length domain.Length) (string, error) {
	parts := []*genai.Part{{Text: prompt}}
	for _, img := range imgs {
		raw, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			slog.Warn("画像パートのデコードに失敗したので省くのだ", "error", err)
			continue
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: img.MimeType, Data: raw},
		})
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	s := SamplingFor(length)
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(s.Temperature),
		TopP:            genai.Ptr(s.TopP),
		TopK:            genai.Ptr(s.TopK),
		MaxOutputTokens: s.MaxOutputTokens,
		StopSequences:   []string{},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &ProviderError{Status: apiErr.Code, Body: apiErr.Message}
		}
		return "", &ProviderError{Body: err.Error()}
	}

	if len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", &ProviderError{Malformed: true, Body: "no candidates or empty content parts"}
	}

	text := StripQuotes(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", &ProviderError{Malformed: true, Body: "candidate text is empty"}
	}
	return text, nil
}

// quotePairs は剥がす対象のクォート組なのだ。
var quotePairs = [][2]string{
	{`"`, `"`},
	{"'", "'"},
	{"“", "”"},
	{"‘", "’"},
	{"「", "」"},
}

// StripQuotes は前後の空白と、本文全体を囲うクォートを取り除くのだ。
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	for changed := true; changed; {
		changed = false
		for _, pair := range quotePairs {
			if len(s) > len(pair[0])+len(pair[1]) &&
				strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) {
				s = strings.TrimSpace(s[len(pair[0]) : len(s)-len(pair[1])])
				changed = true
			}
		}
	}
	return s
}
