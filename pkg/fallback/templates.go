package fallback

import "github.com/shouni/go-comment-kit/pkg/domain"

// englishNote は、英語以外の投稿に定型文を当てたときに付ける明示的な縮退表示なのだ。
// 黙って英語を返すのではなく「英語で生成された」ことを見えるようにするのだ。
const englishNote = "\n\n[Generated in English due to a provider limitation]"

// templates はトーンごとの定型文なのだ。生成がどうしても失敗したときの
// 最後の受け皿で、投稿本文のハッシュで 1 つを決定論的に選ぶのだ。
var templates = map[domain.Tone][]string{
	domain.ToneSupportive: {
		"This is wonderful to see — congratulations on the progress! 👏",
		"Really happy for you, this kind of update always makes my day. Keep going! 🙌",
		"Great to see this milestone. Wishing you continued success! ✨",
	},
	domain.ToneInsightful: {
		"This touches on a broader shift many teams are navigating right now. Thanks for putting it into words. 💡",
		"Interesting perspective — the second-order effects here are worth thinking about. 🎯",
		"There is a useful lesson in this for anyone working on similar problems. Appreciate you sharing it. 📈",
	},
	domain.ToneCurious: {
		"Fascinating — what was the biggest surprise along the way? 🤔",
		"Love this. How did you decide on this direction in the first place? 💭",
		"Really interesting. What would you do differently if you started over? 🌱",
	},
	domain.ToneProfessional: {
		"Thank you for sharing this update. A noteworthy development for the space.",
		"A well-articulated post. This aligns with what many in the industry are observing.",
		"Appreciate the insight here. Looking forward to seeing how this develops.",
	},
}

// Template は投稿本文から決定論的に定型文を選ぶのだ。
// lang が "en" 以外のときは英語縮退の注記を付けるのだ。
func Template(tone domain.Tone, postText, lang string) string {
	set, ok := templates[tone]
	if !ok {
		set = templates[domain.ToneProfessional]
	}
	text := set[domain.StableHash(postText)%uint64(len(set))]
	if lang != "en" && lang != "" {
		text += englishNote
	}
	return text
}
