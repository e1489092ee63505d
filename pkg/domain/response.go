package domain

// CommentResponse は 4 トーンすべてのコメント文字列を保持する結果マップです。
// フォールバック機構により、どの経路を通っても 4 つのフィールドは必ず埋まります。
type CommentResponse struct {
	Supportive   string `json:"supportive"`
	Insightful   string `json:"insightful"`
	Curious      string `json:"curious"`
	Professional string `json:"professional"`

	// UsedFallback は、定型文フォールバックで埋められたトーンの印なのだ。
	// 表示側が「生成失敗あり」を区別するための補助情報で、4 フィールドの
	// 保証そのものには影響しないのだ。
	UsedFallback map[Tone]bool `json:"used_fallback,omitempty"`
}

// Set は指定トーンのコメント文字列を格納するのだ。
func (r *CommentResponse) Set(tone Tone, text string) {
	switch tone {
	case ToneSupportive:
		r.Supportive = text
	case ToneInsightful:
		r.Insightful = text
	case ToneCurious:
		r.Curious = text
	case ToneProfessional:
		r.Professional = text
	}
}

// Get は指定トーンのコメント文字列を返すのだ。
func (r *CommentResponse) Get(tone Tone) string {
	switch tone {
	case ToneSupportive:
		return r.Supportive
	case ToneInsightful:
		return r.Insightful
	case ToneCurious:
		return r.Curious
	case ToneProfessional:
		return r.Professional
	}
	return ""
}

// MarkFallback は指定トーンが定型文で埋められたことを記録するのだ。
func (r *CommentResponse) MarkFallback(tone Tone) {
	if r.UsedFallback == nil {
		r.UsedFallback = make(map[Tone]bool, 4)
	}
	r.UsedFallback[tone] = true
}
