package services

import "sync"

// ReactionOverlay holds the session-local like/save/follow state of the
// viewing user, keyed by post or user id. It is a cosmetic layer over
// the canonical stats and never writes back into Post or User records,
// so "my reaction" cannot be conflated with public post state.
type ReactionOverlay struct {
	mu        sync.Mutex
	liked     map[string]bool
	saved     map[string]bool
	following map[string]bool
}

func NewReactionOverlay() *ReactionOverlay {
	return &ReactionOverlay{
		liked:     make(map[string]bool),
		saved:     make(map[string]bool),
		following: make(map[string]bool),
	}
}

// ToggleLike flips the like state for a post and returns the new state.
func (r *ReactionOverlay) ToggleLike(postID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.liked[postID] = !r.liked[postID]
	return r.liked[postID]
}

func (r *ReactionOverlay) Liked(postID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.liked[postID]
}

// LikeDelta is the amount to add to a post's public like count when
// rendering, so the optimistic toggle shows up immediately.
func (r *ReactionOverlay) LikeDelta(postID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.liked[postID] {
		return 1
	}
	return 0
}

func (r *ReactionOverlay) ToggleSave(postID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved[postID] = !r.saved[postID]
	return r.saved[postID]
}

func (r *ReactionOverlay) Saved(postID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved[postID]
}

func (r *ReactionOverlay) ToggleFollow(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.following[userID] = !r.following[userID]
	return r.following[userID]
}

func (r *ReactionOverlay) Following(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.following[userID]
}
