package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/ideax-social/feedcore/pkg/internal/models"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type GeneratedHighlight struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	CoverURL string `json:"coverUrl"`
}

type GeneratedAuthor struct {
	ID             string               `json:"id"`
	Username       string               `json:"username"`
	DisplayName    string               `json:"displayName"`
	AvatarURL      string               `json:"avatarUrl"`
	Bio            string               `json:"bio"`
	FollowerCount  int                  `json:"followerCount"`
	FollowingCount int                  `json:"followingCount"`
	PostCount      int                  `json:"postCount"`
	Highlights     []GeneratedHighlight `json:"highlights"`
}

type GeneratedMedia struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

type GeneratedPost struct {
	ID         string          `json:"id"`
	Author     GeneratedAuthor `json:"author"`
	Type       string          `json:"type"`
	Title      string          `json:"title"`
	Summary    string          `json:"summary"`
	Content    string          `json:"content_md"`
	Tags       []string        `json:"tags"`
	Industries []string        `json:"industries"`
	Stage      string          `json:"stage"`
	CoverMedia *GeneratedMedia `json:"coverMedia"`
	Stats      struct {
		Likes    int `json:"likes"`
		Comments int `json:"comments"`
		Saves    int `json:"saves"`
		Shares   int `json:"shares"`
	} `json:"stats"`
}

func (v GeneratedPost) ToPost() models.Post {
	post := models.Post{
		ID: v.ID,
		Author: models.User{
			ID:             v.Author.ID,
			Username:       v.Author.Username,
			DisplayName:    v.Author.DisplayName,
			AvatarURL:      v.Author.AvatarURL,
			Bio:            v.Author.Bio,
			FollowerCount:  v.Author.FollowerCount,
			FollowingCount: v.Author.FollowingCount,
			PostCount:      v.Author.PostCount,
			Highlights: lo.Map(v.Author.Highlights, func(item GeneratedHighlight, _ int) models.Highlight {
				return models.Highlight{
					ID:       item.ID,
					Title:    item.Title,
					CoverURL: item.CoverURL,
				}
			}),
		},
		Type:       v.Type,
		Title:      v.Title,
		Summary:    v.Summary,
		Content:    v.Content,
		Tags:       v.Tags,
		Industries: v.Industries,
		Stage:      v.Stage,
	}
	if v.CoverMedia != nil {
		post.CoverMedia = &models.Media{
			Type:      v.CoverMedia.Type,
			URL:       v.CoverMedia.URL,
			Thumbnail: v.CoverMedia.Thumbnail,
		}
	}
	post.Stats = models.PostStats{
		Likes:    max(v.Stats.Likes, 0),
		Comments: max(v.Stats.Comments, 0),
		Saves:    max(v.Stats.Saves, 0),
		Shares:   max(v.Stats.Shares, 0),
	}
	return post
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateConfig struct {
	ResponseMimeType string `json:"response_mime_type"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generateConfig    `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

const promptTemplate = `Generate a JSON array of %d unique posts for the 'IdeaX' platform.

RULES:
1. All posts MUST have a 'coverMedia' of type 'image'.
2. Use varied aspect ratios for images from picsum.photos (e.g., /1080/1350 for portrait, /1080/1080 for square, /1080/608 for landscape).
3. Content should be diverse, covering industries like 'SaaS', 'FinTech', 'HealthTech', 'Creator Economy'.
4. Every post needs an author with username, displayName, avatarUrl (https://i.pravatar.cc/150?u=[ID]), bio, follower/following/post counts, 3-5 lowercase tags, 1-2 industries, a stage and a stats block.`

// FetchBatch asks the generative backend for a batch of fresh posts. The
// caller owns timeout and fallback handling.
func FetchBatch(ctx context.Context, server, model, apiKey string, count int) ([]GeneratedPost, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", server, model, apiKey)

	reqBody := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: fmt.Sprintf(promptTemplate, count)}}},
		},
		GenerationConfig: generateConfig{ResponseMimeType: "application/json"},
	}

	payload, err := jsoniter.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode generation request: %v", err)
	}

	log.Debug().Str("model", model).Int("count", count).Msg("Fetching generated feed content...")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build generation request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch generated content: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, body)
	}

	var envelope generateResponse
	if err := jsoniter.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse generation envelope: %v", err)
	}
	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("generation response contains no candidates")
	}

	var posts []GeneratedPost
	raw := envelope.Candidates[0].Content.Parts[0].Text
	if err := jsoniter.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, fmt.Errorf("failed to parse generated posts JSON: %v", err)
	}

	log.Debug().Int("count", len(posts)).Msg("Fetched generated feed content...")

	return posts, nil
}
