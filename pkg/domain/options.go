package domain

import (
	"fmt"
	"strings"
)

// Tone は生成するコメントの口調（トーン）を表すのだ。
type Tone string

const (
	ToneSupportive   Tone = "supportive"
	ToneInsightful   Tone = "insightful"
	ToneCurious      Tone = "curious"
	ToneProfessional Tone = "professional"
	// ToneAll は 4 トーンすべてを要求する特別な値なのだ。
	ToneAll Tone = "all"
)

// Length はコメントの長さ（文数とサンプリング予算）を 5 段階で指定します。
type Length string

const (
	LengthVeryShort Length = "very_short"
	LengthShort     Length = "short"
	LengthMedium    Length = "medium"
	LengthLong      Length = "long"
	LengthVeryLong  Length = "very_long"
)

// AllTones は結果マップが必ず持つ 4 つの具象トーンを固定順で返すのだ。
func AllTones() []Tone {
	return []Tone{ToneSupportive, ToneInsightful, ToneCurious, ToneProfessional}
}

// AllLengths は very_short から very_long までを昇順で返します。
func AllLengths() []Length {
	return []Length{LengthVeryShort, LengthShort, LengthMedium, LengthLong, LengthVeryLong}
}

// ParseTone は文字列をトーンに変換します。未知の値はエラーです。
func ParseTone(s string) (Tone, error) {
	switch t := Tone(strings.ToLower(strings.TrimSpace(s))); t {
	case ToneSupportive, ToneInsightful, ToneCurious, ToneProfessional, ToneAll:
		return t, nil
	default:
		return "", fmt.Errorf("未知のトーン '%s' なのだ（supportive / insightful / curious / professional / all が使えるのだ）", s)
	}
}

// ParseLength は文字列を長さ指定に変換します。未知の値はエラーです。
func ParseLength(s string) (Length, error) {
	switch l := Length(strings.ToLower(strings.TrimSpace(s))); l {
	case LengthVeryShort, LengthShort, LengthMedium, LengthLong, LengthVeryLong:
		return l, nil
	default:
		return "", fmt.Errorf("未知の長さ指定 '%s' なのだ（very_short / short / medium / long / very_long が使えるのだ）", s)
	}
}

// CommentOptions は 1 回の生成呼び出しに対するユーザー選択です。
type CommentOptions struct {
	Tone   Tone   `json:"tone"`
	Length Length `json:"length"`
}

// ConcreteTones は、実際にプロバイダーへ問い合わせるトーンの集合を返すのだ。
// ToneAll は 4 トーンすべてに展開されるのだ。
func (o CommentOptions) ConcreteTones() map[Tone]bool {
	requested := make(map[Tone]bool, 4)
	if o.Tone == ToneAll || o.Tone == "" {
		for _, t := range AllTones() {
			requested[t] = true
		}
		return requested
	}
	requested[o.Tone] = true
	return requested
}
