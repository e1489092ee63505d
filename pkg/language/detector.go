// Package language は、投稿本文から 2 文字の言語コードを推定する
// 文字クラスベースの軽量ヒューリスティックを提供するのだ。
// 外部呼び出しは一切なく、純粋関数として常に結果を返すのだ。
package language

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Default は、本文が短すぎる・どのパターンにも一致しない場合の既定値です。
const Default = "en"

// minTextLength はこの文字数（ルーン数）未満の本文を判定対象外とするのだ。
const minTextLength = 10

// pattern は言語コードと判定用文字クラスの組です。先勝ちで評価されるため、
// 順序に意味があります。漢字を含む日本語をかな優先で拾うよう ja を zh より
// 先に置き、ラテン系はより識別力の高い文字クラスを先に置いています。
type pattern struct {
	code string
	re   *regexp.Regexp
}

var patterns = []pattern{
	{"ja", regexp.MustCompile(`[\x{3040}-\x{309F}\x{30A0}-\x{30FF}]`)}, // ひらがな・カタカナ
	{"ko", regexp.MustCompile(`[\x{AC00}-\x{D7AF}\x{1100}-\x{11FF}]`)}, // ハングル
	{"zh", regexp.MustCompile(`[\x{4E00}-\x{9FFF}]`)},                  // CJK 統合漢字
	{"ar", regexp.MustCompile(`[\x{0600}-\x{06FF}]`)},                  // アラビア文字
	{"ru", regexp.MustCompile(`[\x{0400}-\x{04FF}]`)},                  // キリル文字
	{"es", regexp.MustCompile(`[ñ¿¡]`)},
	{"pt", regexp.MustCompile(`[ãõ]`)},
	{"de", regexp.MustCompile(`[äöüß]`)},
	{"fr", regexp.MustCompile(`[àâçèêëîïôûœ]`)},
	{"it", regexp.MustCompile(`[ìò]`)},
	{"es", regexp.MustCompile(`[áéíóú]`)}, // 残るアクセント付き母音はスペイン語に倒すのだ
}

// Detect は本文の言語コードを推定するのだ。確信が持てないときは "en" を返すのだ。
func Detect(text string) string {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minTextLength {
		return Default
	}

	for _, p := range patterns {
		if p.re.MatchString(trimmed) {
			return p.code
		}
	}
	return Default
}
