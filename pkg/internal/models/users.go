package models

type Highlight struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	CoverURL string `json:"coverUrl"`
}

type User struct {
	ID             string      `json:"id"`
	Username       string      `json:"username"`
	DisplayName    string      `json:"displayName"`
	AvatarURL      string      `json:"avatarUrl"`
	Bio            string      `json:"bio"`
	FollowerCount  int         `json:"followerCount"`
	FollowingCount int         `json:"followingCount"`
	PostCount      int         `json:"postCount"`
	Highlights     []Highlight `json:"highlights,omitempty"`
}

// ProfilePatch carries the editable subset of a User profile. Nil fields
// keep their current value. Avatar replacement goes through an opaque
// upload so the edit flow never hands the store a raw URL.
type ProfilePatch struct {
	Username    *string      `json:"username,omitempty"`
	DisplayName *string      `json:"displayName,omitempty"`
	Bio         *string      `json:"bio,omitempty"`
	Avatar      *MediaUpload `json:"-"`
}
