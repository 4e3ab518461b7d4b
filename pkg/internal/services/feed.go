package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ideax-social/feedcore/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// Fetcher produces one page of posts. It must not fail; FetchFeedBatch
// is the production implementation.
type Fetcher func(ctx context.Context) []models.Post

// FeedStore owns the canonical newest-first post sequence and the acting
// user record. All other feed views are projections over its snapshots.
type FeedStore struct {
	Notifier

	mu          sync.Mutex
	posts       []models.Post
	currentUser models.User
	loading     bool
	fetching    bool
	version     uint64

	fetch    Fetcher
	resolver *MediaResolver
}

func NewFeedStore(currentUser models.User, opts ...FeedStoreOption) *FeedStore {
	store := &FeedStore{
		currentUser: currentUser,
		fetch:       FetchFeedBatch,
		resolver:    &MediaResolver{},
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

type FeedStoreOption func(*FeedStore)

// WithFetcher overrides the content source, mainly for tests.
func WithFetcher(fetch Fetcher) FeedStoreOption {
	return func(s *FeedStore) { s.fetch = fetch }
}

// WithMediaResolver overrides the media resolver, e.g. to plug in a real
// thumbnailer.
func WithMediaResolver(resolver *MediaResolver) FeedStoreOption {
	return func(s *FeedStore) { s.resolver = resolver }
}

// LoadInitial replaces the feed with a fresh first page. Repeated calls
// while a load is in flight are ignored.
func (s *FeedStore) LoadInitial(ctx context.Context) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.mu.Unlock()
	s.publish()

	batch := s.fetch(ctx)

	s.mu.Lock()
	s.posts = batch
	s.loading = false
	s.version++
	s.mu.Unlock()
	s.publish()
}

// LoadMore appends one page to the end of the feed, preserving the order
// of everything already present. At most one pagination request is in
// flight at a time; extra calls are dropped.
func (s *FeedStore) LoadMore(ctx context.Context) {
	s.mu.Lock()
	if s.fetching {
		s.mu.Unlock()
		return
	}
	s.fetching = true
	s.mu.Unlock()
	s.publish()

	batch := s.fetch(ctx)

	s.mu.Lock()
	s.posts = append(s.posts, batch...)
	s.fetching = false
	s.version++
	s.mu.Unlock()
	s.publish()
}

// CreatePost admits a draft into the feed: validates it, resolves its
// media, stamps the acting user as author and prepends the result. The
// acting user's post count goes up by one. Media attachments that cannot
// be resolved are dropped without failing the publish.
func (s *FeedStore) CreatePost(draft models.PostDraft) (models.Post, error) {
	if err := validate.Struct(draft); err != nil {
		return models.Post{}, fmt.Errorf("unable to validate post draft: %v", err)
	}

	s.mu.Lock()
	post := models.Post{
		ID:              uuid.NewString(),
		Author:          s.currentUser,
		Type:            draft.Type,
		Title:           draft.Title,
		Summary:         draft.Summary,
		Content:         draft.Content,
		Tags:            draft.Tags,
		Industries:      draft.Industries,
		Stage:           draft.Stage,
		Difficulty:      draft.Difficulty,
		PotentialImpact: draft.PotentialImpact,
		Language:        DetectLanguage(draft.Content),
		IsReel:          draft.IsReel,
	}

	if draft.CoverMedia != nil {
		if media, err := s.resolver.ResolveUpload(*draft.CoverMedia); err != nil {
			log.Warn().Err(err).Msg("Failed to resolve cover media, publishing without it...")
		} else {
			post.CoverMedia = &media
		}
	}
	for _, upload := range draft.AdditionalMedia {
		media, err := s.resolver.ResolveUpload(upload)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to resolve media attachment, skipping it...")
			continue
		}
		post.AdditionalMedia = append(post.AdditionalMedia, media)
	}

	s.posts = append([]models.Post{post}, s.posts...)
	s.currentUser.PostCount++
	s.version++
	s.mu.Unlock()

	s.publish()
	return post, nil
}

// UpdateAuthorProfile applies a profile patch to the given user and
// rewrites the author snapshot embedded in every post of theirs, so no
// stale denormalized copy stays visible. Posts by other authors are left
// untouched. An avatar that cannot be resolved keeps the previous one.
func (s *FeedStore) UpdateAuthorProfile(userID string, patch models.ProfilePatch) (models.User, error) {
	s.mu.Lock()

	updated, found := s.lookupUser(userID)
	if !found {
		s.mu.Unlock()
		return models.User{}, fmt.Errorf("unable to find user: %s", userID)
	}

	if patch.Username != nil {
		updated.Username = *patch.Username
	}
	if patch.DisplayName != nil {
		updated.DisplayName = *patch.DisplayName
	}
	if patch.Bio != nil {
		updated.Bio = *patch.Bio
	}
	if patch.Avatar != nil {
		if media, err := s.resolver.ResolveUpload(*patch.Avatar); err != nil {
			log.Warn().Err(err).Str("user", userID).Msg("Failed to resolve new avatar, keeping the previous one...")
		} else {
			updated.AvatarURL = media.URL
		}
	}

	if s.currentUser.ID == userID {
		s.currentUser = updated
	}
	for idx := range s.posts {
		if s.posts[idx].Author.ID == userID {
			s.posts[idx].Author = updated
		}
	}
	s.version++
	s.mu.Unlock()

	s.publish()
	return updated, nil
}

// lookupUser resolves the freshest record for a user id: the acting user
// record when it matches, otherwise the first author snapshot found.
func (s *FeedStore) lookupUser(userID string) (models.User, bool) {
	if s.currentUser.ID == userID {
		return s.currentUser, true
	}
	for _, post := range s.posts {
		if post.Author.ID == userID {
			return post.Author, true
		}
	}
	return models.User{}, false
}

// Posts returns a snapshot copy of the post sequence.
func (s *FeedStore) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *FeedStore) CurrentUser() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

func (s *FeedStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *FeedStore) FetchingMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetching
}

// Version increases on every change of the post sequence; projections
// use it as their memoization key.
func (s *FeedStore) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}
