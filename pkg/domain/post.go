package domain

// PostType は投稿の種別を表すのだ。
type PostType string

const (
	PostTypeText     PostType = "text"
	PostTypeImage    PostType = "image"
	PostTypeArticle  PostType = "article"
	PostTypeDocument PostType = "document"
	PostTypeVideo    PostType = "video"
)

// Engagement は投稿への反応数（いいね・コメント・シェア）を保持します。
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// Total は反応数の合計を返すのだ。
func (e Engagement) Total() int {
	return e.Likes + e.Comments + e.Shares
}

// PostContent は、コンテンツ抽出側から渡される投稿スナップショットです。
// パイプラインは 1 回の生成呼び出しの間だけこれを参照し、書き換えません。
type PostContent struct {
	Text          string      `json:"text"`
	Author        string      `json:"author,omitempty"`
	AuthorTitle   string      `json:"author_title,omitempty"`
	AuthorCompany string      `json:"author_company,omitempty"`
	Images        []string    `json:"images,omitempty"`
	Hashtags      []string    `json:"hashtags,omitempty"`
	Mentions      []string    `json:"mentions,omitempty"`
	Engagement    *Engagement `json:"engagement,omitempty"`
	URL           string      `json:"url,omitempty"`
	Timestamp     string      `json:"timestamp,omitempty"`
	PostType      PostType    `json:"post_type,omitempty"`
}

// HasImages は添付画像があるかどうかを返すのだ。
func (p PostContent) HasImages() bool {
	return len(p.Images) > 0
}
