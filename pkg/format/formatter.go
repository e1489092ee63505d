// Package format は、生成済みコメントへの決定論的な後処理を担うのだ。
// 箇条書き・段落・絵文字だけを整え、単語の中身には一切触れないのだ。
// 同じ入力に二度かけても結果が変わらない（冪等である）ことが要件なのだ。
package format

import (
	"regexp"

	"github.com/shouni/go-comment-kit/pkg/domain"
)

var (
	// bulletGlyphRe は行頭の各種箇条書き記号なのだ。プレーンなダッシュに揃えるのだ。
	bulletGlyphRe = regexp.MustCompile(`(?m)^[ \t]*[•‣▪◦·*][ \t]*`)
	// bulletSpaceRe はダッシュ直後にスペースがない箇条書き行なのだ。
	bulletSpaceRe = regexp.MustCompile(`(?m)^-([^\s-])`)
	// paragraphRe は「文末記号 + 空白 + 大文字」の継ぎ目なのだ。段落を割る位置なのだ。
	paragraphRe = regexp.MustCompile(`([.!?])[ \t]+(\p{Lu})`)
	// excessNewlinesRe は 3 連以上の改行なのだ。空行 1 つに潰すのだ。
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
	// emojiRe は絵文字の有無の判定に使うのだ。主要な絵文字ブロックを対象にするのだ。
	emojiRe = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}\x{2B00}-\x{2BFF}\x{1F000}-\x{1F2FF}]`)
	// trailingPunctRe は末尾の句読点連なりなのだ（short の絵文字挿入位置を探すのだ）。
	trailingPunctRe = regexp.MustCompile(`[.!?]+$`)
)

// emojiPalettes はトーンごとの固定絵文字パレットなのだ。
var emojiPalettes = map[domain.Tone][]string{
	domain.ToneSupportive:   {"👏", "🙌", "💪", "✨"},
	domain.ToneInsightful:   {"💡", "🎯", "📈", "🔍"},
	domain.ToneCurious:      {"🤔", "💭", "🌱", "🧭"},
	domain.ToneProfessional: {"🤝", "📌", "📊"},
}

// headPlacementThreshold 未満のハッシュ剰余なら絵文字を先頭に置くのだ（約 40%）。
const headPlacementThreshold = 4

// Format は 1 トーン分の完成文字列に後処理をかけるのだ。
// very_short は一切手を付けずそのまま返すのだ。
func Format(text string, tone domain.Tone, length domain.Length) string {
	if length == domain.LengthVeryShort {
		return text
	}

	out := normalizeBullets(text)

	if length == domain.LengthMedium || length == domain.LengthLong || length == domain.LengthVeryLong {
		out = insertParagraphBreaks(out)
	}

	out = injectEmoji(out, tone, length)
	return out
}

// normalizeBullets は箇条書き記号をダッシュに揃え、直後のスペースを保証するのだ。
func normalizeBullets(text string) string {
	out := bulletGlyphRe.ReplaceAllString(text, "- ")
	out = bulletSpaceRe.ReplaceAllString(out, "- $1")
	return out
}

// insertParagraphBreaks は文末と次の文頭の間に空行を入れ、
// 増えすぎた改行を空行 1 つに正規化するのだ。
func insertParagraphBreaks(text string) string {
	out := paragraphRe.ReplaceAllString(text, "$1\n\n$2")
	out = excessNewlinesRe.ReplaceAllString(out, "\n\n")
	return out
}

// injectEmoji は、絵文字を 1 つも含まない本文にトーン相応の絵文字を
// ちょうど 1 つ差し込むのだ。選択も位置も本文のハッシュで決まるのだ。
func injectEmoji(text string, tone domain.Tone, length domain.Length) string {
	if emojiRe.MatchString(text) {
		return text
	}
	palette, ok := emojiPalettes[tone]
	if !ok {
		return text
	}

	h := domain.StableHash(text)
	emoji := palette[h%uint64(len(palette))]

	if length == domain.LengthShort {
		// 末尾の句読点の手前、なければ末尾に付けるのだ
		if loc := trailingPunctRe.FindStringIndex(text); loc != nil {
			return text[:loc[0]] + " " + emoji + text[loc[0]:]
		}
		return text + " " + emoji
	}

	// medium 以上: 約 4 割は文頭、残りは末尾に置くのだ
	if h%10 < headPlacementThreshold {
		return emoji + " " + text
	}
	return text + " " + emoji
}
