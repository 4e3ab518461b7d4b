package models

const (
	PostTypeProblem  = "problem"
	PostTypeIdea     = "idea"
	PostTypeSolution = "solution"
	PostTypeShowcase = "showcase"
)

const (
	StageIdea      = "idea"
	StagePrototype = "prototype"
	StageMVP       = "mvp"
	StageLaunched  = "launched"
	StagePMF       = "pmf"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const (
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type Media struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type PostStats struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Saves    int `json:"saves"`
	Shares   int `json:"shares"`
}

// Post is a single feed entry. Author is a denormalized snapshot of the
// authoring User taken at creation time; the feed store rewrites it on
// profile edits so it never goes stale.
type Post struct {
	ID              string    `json:"id"`
	Author          User      `json:"author"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	Content         string    `json:"content_md"`
	Tags            []string  `json:"tags"`
	Industries      []string  `json:"industries"`
	Stage           string    `json:"stage"`
	Difficulty      string    `json:"difficulty,omitempty"`
	PotentialImpact string    `json:"potential_impact,omitempty"`
	Language        string    `json:"language,omitempty"`
	IsReel          bool      `json:"is_reel,omitempty"`
	CoverMedia      *Media    `json:"coverMedia,omitempty"`
	AdditionalMedia []Media   `json:"additionalMedia,omitempty"`
	Stats           PostStats `json:"stats"`
}

// MediaUpload is an opaque media handle handed over by the post creation
// and profile edit flows, not yet resolved into a consumable URL.
type MediaUpload struct {
	Data []byte `json:"-"`
	Mime string `json:"mime"`
}

// PostDraft is the post creation payload before admission into the feed.
type PostDraft struct {
	Type            string   `json:"type" validate:"required,oneof=problem idea solution showcase"`
	Title           string   `json:"title" validate:"required,max=256"`
	Summary         string   `json:"summary" validate:"max=1024"`
	Content         string   `json:"content_md" validate:"required"`
	Tags            []string `json:"tags" validate:"max=16"`
	Industries      []string `json:"industries" validate:"max=8"`
	Stage           string   `json:"stage" validate:"required,oneof=idea prototype mvp launched pmf"`
	Difficulty      string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	PotentialImpact string   `json:"potential_impact" validate:"omitempty,oneof=low medium high"`
	IsReel          bool     `json:"is_reel"`

	CoverMedia      *MediaUpload  `json:"-"`
	AdditionalMedia []MediaUpload `json:"-"`
}
