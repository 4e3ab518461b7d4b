package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/ideax-social/feedcore/pkg/internal/cache"
	"github.com/ideax-social/feedcore/pkg/internal/models"
	"github.com/samber/lo"
)

// Projections are pure views over a post snapshot. None of them mutate
// their input, so every call is safe to memoize keyed by feed version.

const TrendingTagLimit = 8

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// AuthorDirectory lists the unique authors of the given posts in
// first-seen order, with the acting user appended when absent.
func AuthorDirectory(posts []models.Post, actingUser models.User) []models.User {
	authors := lo.UniqBy(lo.Map(posts, func(item models.Post, _ int) models.User {
		return item.Author
	}), func(item models.User) string {
		return item.ID
	})

	if !lo.ContainsBy(authors, func(item models.User) bool {
		return item.ID == actingUser.ID
	}) {
		authors = append(authors, actingUser)
	}

	return authors
}

// PostsByAuthor filters the posts authored by the given user, preserving
// feed order.
func PostsByAuthor(posts []models.Post, userID string) []models.Post {
	return lo.Filter(posts, func(item models.Post, _ int) bool {
		return item.Author.ID == userID
	})
}

// TrendingTags counts tag usage across all posts and returns the top
// tags by frequency, descending. Ties keep first-appearance order.
func TrendingTags(posts []models.Post) []TagCount {
	counts := make(map[string]int)
	var order []string
	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	trending := lo.Map(order, func(tag string, _ int) TagCount {
		return TagCount{Tag: tag, Count: counts[tag]}
	})
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Count > trending[j].Count
	})

	if len(trending) > TrendingTagLimit {
		trending = trending[:TrendingTagLimit]
	}
	return trending
}

// TrendingTagsCached memoizes TrendingTags through the shared cache,
// keyed by feed version.
func TrendingTagsCached(version uint64, posts []models.Post) []TagCount {
	if localCache.S == nil {
		return TrendingTags(posts)
	}

	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	key := fmt.Sprintf("trending-tags#%d", version)
	if val, err := marshal.Get(ctx, key, new([]TagCount)); err == nil {
		return *val.(*[]TagCount)
	}

	trending := TrendingTags(posts)
	_ = marshal.Set(
		ctx,
		key,
		trending,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"trending-tags"}),
	)
	return trending
}

// SearchPosts filters posts by a case-insensitive substring match over
// title, summary, tags and author display name. A blank query returns
// the input slice unchanged.
func SearchPosts(posts []models.Post, query string) []models.Post {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) == 0 {
		return posts
	}

	return lo.Filter(posts, func(item models.Post, _ int) bool {
		if strings.Contains(strings.ToLower(item.Title), query) {
			return true
		}
		if strings.Contains(strings.ToLower(item.Summary), query) {
			return true
		}
		if strings.Contains(strings.ToLower(item.Author.DisplayName), query) {
			return true
		}
		return lo.SomeBy(item.Tags, func(tag string) bool {
			return strings.Contains(strings.ToLower(tag), query)
		})
	})
}
