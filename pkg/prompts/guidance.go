package prompts

import "github.com/shouni/go-comment-kit/pkg/domain"

// lengthSentenceRange は長さ指定ごとの目標文数なのだ。
var lengthSentenceRange = map[domain.Length]string{
	domain.LengthVeryShort: "1-2",
	domain.LengthShort:     "2-3",
	domain.LengthMedium:    "3-4",
	domain.LengthLong:      "4-6",
	domain.LengthVeryLong:  "6-8",
}

// lengthDirective は長さ指定に応じた書きぶりの指示なのだ。
var lengthDirective = map[domain.Length]string{
	domain.LengthVeryShort: "Be extremely concise. One sharp reaction is enough.",
	domain.LengthShort:     "Be concise. Make a single clear point without elaboration.",
	domain.LengthMedium:    "Make one main point and support it briefly.",
	domain.LengthLong:      "Develop multiple points with supporting detail.",
	domain.LengthVeryLong:  "Develop multiple points in depth, with examples or reasoning where natural.",
}

// structureGuidance は長さに応じた段落構成のヒントなのだ。
var structureGuidance = map[domain.Length]string{
	domain.LengthVeryShort: "Write a single line.",
	domain.LengthShort:     "Write a single short paragraph.",
	domain.LengthMedium:    "Use 1-2 short paragraphs with a blank line between them.",
	domain.LengthLong:      "Use 2-3 short paragraphs with a blank line between them.",
	domain.LengthVeryLong:  "Use 3-4 short paragraphs with a blank line between them.",
}

// toneGuidance はトーンごとの文体と狙いを 1 段落で固定するのだ。
var toneGuidance = map[domain.Tone]string{
	domain.ToneSupportive: "Tone: supportive. Be warm, encouraging, and genuinely celebratory. " +
		"Acknowledge the effort or achievement behind the post and make the author feel seen. " +
		"Avoid empty flattery; point to something specific you appreciated.",
	domain.ToneInsightful: "Tone: insightful. Add a substantive observation, pattern, or implication " +
		"the post itself does not state. Connect the topic to a broader trend or a practical lesson. " +
		"The reader should come away having learned something.",
	domain.ToneCurious: "Tone: curious. Lead with genuine interest and end with one thoughtful, " +
		"open-ended question that invites the author to elaborate. Ask about the how or the why, " +
		"never something already answered in the post.",
	domain.ToneProfessional: "Tone: professional. Be polished, measured, and businesslike. " +
		"Offer a considered perspective a colleague or industry peer would respect. " +
		"No slang, no exclamation marks, no hype.",
}

// toneEmojiDirective はトーンごとの絵文字使用ルールなのだ。
var toneEmojiDirective = map[domain.Tone]string{
	domain.ToneSupportive:   "You may use 1-2 emoji such as 👏 🙌 💪 ✨ where they feel natural.",
	domain.ToneInsightful:   "You may use 1-2 emoji such as 💡 🎯 📈 🔍 where they feel natural.",
	domain.ToneCurious:      "You may use 1-2 emoji such as 🤔 💭 🌱 🧭 where they feel natural.",
	domain.ToneProfessional: "Use at most one emoji, such as 🤝 📌 📊, or none at all.",
}

// professionalKeywords は「ビジネス色の強い投稿」を見分けるキーワード群なのだ。
// 本文の小文字化済みテキストに対する部分一致で判定するのだ。
var professionalKeywords = []string{
	"funding",
	"series a",
	"series b",
	"acquisition",
	"ipo",
	"merger",
	"partnership",
	"hiring",
	"promotion",
	"promoted",
	"launch",
	"milestone",
	"keynote",
	"quarterly",
	"revenue",
	"startup",
}
