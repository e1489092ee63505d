package generator

import "github.com/shouni/go-comment-kit/pkg/domain"

// Sampling は 1 リクエスト分のサンプリングパラメータなのだ。
// 長さ指定に対して temperature と maxOutputTokens は単調非減少で、
// 短い依頼は簡潔に、長い依頼には余白を与えつつ暴走コストを抑えるのだ。
type Sampling struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

const (
	defaultTopP = 0.95
	defaultTopK = 40
)

var samplingByLength = map[domain.Length]Sampling{
	domain.LengthVeryShort: {Temperature: 0.60, TopP: defaultTopP, TopK: defaultTopK, MaxOutputTokens: 150},
	domain.LengthShort:     {Temperature: 0.65, TopP: defaultTopP, TopK: defaultTopK, MaxOutputTokens: 300},
	domain.LengthMedium:    {Temperature: 0.70, TopP: defaultTopP, TopK: defaultTopK, MaxOutputTokens: 500},
	domain.LengthLong:      {Temperature: 0.75, TopP: defaultTopP, TopK: defaultTopK, MaxOutputTokens: 800},
	domain.LengthVeryLong:  {Temperature: 0.80, TopP: defaultTopP, TopK: defaultTopK, MaxOutputTokens: 1100},
}

// SamplingFor は長さ指定に対応するサンプリング設定を返すのだ。
// 未知の値は medium に倒すのだ。
func SamplingFor(length domain.Length) Sampling {
	if s, ok := samplingByLength[length]; ok {
		return s
	}
	return samplingByLength[domain.LengthMedium]
}
