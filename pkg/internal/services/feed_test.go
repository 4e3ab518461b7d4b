package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideax-social/feedcore/pkg/internal/models"
)

func makePost(id string, author models.User, title string, tags ...string) models.Post {
	return models.Post{
		ID:      id,
		Author:  author,
		Type:    models.PostTypeIdea,
		Title:   title,
		Content: "body",
		Tags:    tags,
		Stage:   models.StageIdea,
	}
}

var (
	authorA = models.User{ID: "a", Username: "alice", DisplayName: "Alice", PostCount: 3}
	authorB = models.User{ID: "b", Username: "bob", DisplayName: "Bob", PostCount: 7}
)

func pageFetcher(pages ...[]models.Post) Fetcher {
	var calls int32
	return func(_ context.Context) []models.Post {
		idx := int(atomic.AddInt32(&calls, 1)) - 1
		if idx >= len(pages) {
			return nil
		}
		return pages[idx]
	}
}

func TestFeedStore_Pagination(t *testing.T) {
	first := []models.Post{
		makePost("p1", authorA, "one"),
		makePost("p2", authorB, "two"),
	}
	second := []models.Post{
		makePost("p3", authorA, "three"),
		makePost("p4", authorB, "four"),
		makePost("p5", authorA, "five"),
	}

	s := NewFeedStore(authorA, WithFetcher(pageFetcher(first, second)))

	s.LoadInitial(context.Background())
	require.Len(t, s.Posts(), 2)

	s.LoadMore(context.Background())
	posts := s.Posts()
	require.Len(t, posts, 5)
	for idx, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		assert.Equal(t, id, posts[idx].ID)
	}
	assert.False(t, s.Loading())
	assert.False(t, s.FetchingMore())
}

func TestFeedStore_LoadInitialIgnoredWhileLoading(t *testing.T) {
	gate := make(chan struct{})
	var calls int32
	fetch := func(_ context.Context) []models.Post {
		atomic.AddInt32(&calls, 1)
		<-gate
		return []models.Post{makePost("p1", authorA, "one")}
	}

	s := NewFeedStore(authorA, WithFetcher(fetch))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.LoadInitial(context.Background())
	}()
	for !s.Loading() {
		time.Sleep(time.Millisecond)
	}

	// Ignored while the first load is still in flight.
	s.LoadInitial(context.Background())

	close(gate)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Len(t, s.Posts(), 1)
}

func TestFeedStore_LoadMoreSingleFlight(t *testing.T) {
	gate := make(chan struct{})
	var calls int32
	fetch := func(_ context.Context) []models.Post {
		atomic.AddInt32(&calls, 1)
		<-gate
		return []models.Post{makePost(fmt.Sprintf("p%d", atomic.LoadInt32(&calls)), authorA, "more")}
	}

	s := NewFeedStore(authorA, WithFetcher(fetch))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.LoadMore(context.Background())
	}()
	for !s.FetchingMore() {
		time.Sleep(time.Millisecond)
	}

	// Dropped: a pagination request is already outstanding.
	s.LoadMore(context.Background())

	close(gate)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Len(t, s.Posts(), 1)
}

func TestFeedStore_CreatePost(t *testing.T) {
	seed := []models.Post{
		makePost("p1", authorA, "one"),
		makePost("p2", authorB, "two"),
	}

	s := NewFeedStore(authorA, WithFetcher(pageFetcher(seed)))
	s.LoadInitial(context.Background())

	created, err := s.CreatePost(models.PostDraft{
		Type:    models.PostTypeIdea,
		Title:   "X",
		Content: "a brand new idea",
		Stage:   models.StagePrototype,
		Tags:    []string{"ai"},
	})
	require.NoError(t, err)

	posts := s.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, "X", posts[0].Title)
	assert.Equal(t, authorA.ID, posts[0].Author.ID)
	assert.NotEmpty(t, posts[0].ID)
	assert.Zero(t, posts[0].Stats)
	assert.Equal(t, created.ID, posts[0].ID)

	assert.Equal(t, authorA.PostCount+1, s.CurrentUser().PostCount)
	assert.Equal(t, "p2", posts[2].ID)
	assert.Equal(t, authorB, posts[2].Author)
}

func TestFeedStore_CreatePostValidation(t *testing.T) {
	s := NewFeedStore(authorA)

	_, err := s.CreatePost(models.PostDraft{
		Type:  "rant",
		Title: "X",
		Stage: models.StageIdea,
	})
	require.Error(t, err)
	assert.Empty(t, s.Posts())
}

func TestFeedStore_CreatePostResolvesMedia(t *testing.T) {
	s := NewFeedStore(authorA)

	post, err := s.CreatePost(models.PostDraft{
		Type:       models.PostTypeShowcase,
		Title:      "demo",
		Content:    "with media",
		Stage:      models.StageLaunched,
		CoverMedia: &models.MediaUpload{Data: []byte("mp4data"), Mime: "video/mp4"},
		AdditionalMedia: []models.MediaUpload{
			{Data: []byte("png"), Mime: "image/png"},
			{Data: []byte("???"), Mime: "application/pdf"}, // dropped, not fatal
		},
	})
	require.NoError(t, err)

	require.NotNil(t, post.CoverMedia)
	assert.Equal(t, models.MediaTypeVideo, post.CoverMedia.Type)
	assert.Equal(t, PlaceholderThumbnailURL, post.CoverMedia.Thumbnail)
	require.Len(t, post.AdditionalMedia, 1)
	assert.Equal(t, models.MediaTypeImage, post.AdditionalMedia[0].Type)
}

func TestFeedStore_UpdateAuthorProfile(t *testing.T) {
	seed := []models.Post{
		makePost("p1", authorA, "one"),
		makePost("p2", authorB, "two"),
		makePost("p3", authorA, "three"),
	}

	s := NewFeedStore(authorA, WithFetcher(pageFetcher(seed)))
	s.LoadInitial(context.Background())

	name := "New Name"
	updated, err := s.UpdateAuthorProfile("a", models.ProfilePatch{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.DisplayName)

	posts := s.Posts()
	for _, post := range posts {
		if post.Author.ID == "a" {
			assert.Equal(t, updated, post.Author)
		}
	}
	assert.Equal(t, authorB, posts[1].Author)
	assert.Equal(t, "New Name", s.CurrentUser().DisplayName)

	_, err = s.UpdateAuthorProfile("nobody", models.ProfilePatch{DisplayName: &name})
	require.Error(t, err)
}

func TestFeedStore_UpdateProfileKeepsAvatarOnBadUpload(t *testing.T) {
	seed := []models.Post{makePost("p1", authorA, "one")}
	s := NewFeedStore(authorA, WithFetcher(pageFetcher(seed)))
	s.LoadInitial(context.Background())

	before := s.CurrentUser().AvatarURL
	updated, err := s.UpdateAuthorProfile("a", models.ProfilePatch{
		Avatar: &models.MediaUpload{Data: []byte("x"), Mime: "application/octet-stream"},
	})
	require.NoError(t, err)
	assert.Equal(t, before, updated.AvatarURL)
}

func TestFeedStore_Subscribe(t *testing.T) {
	s := NewFeedStore(authorA, WithFetcher(pageFetcher(nil)))

	var fired int32
	cancel := s.Subscribe(func() { atomic.AddInt32(&fired, 1) })

	s.LoadInitial(context.Background())
	assert.EqualValues(t, 2, atomic.LoadInt32(&fired)) // loading on, then loaded

	cancel()
	s.LoadInitial(context.Background())
	assert.EqualValues(t, 2, atomic.LoadInt32(&fired))
}
