package services

import (
	"context"
	"time"

	"github.com/ideax-social/feedcore/pkg/internal/models"
	"github.com/ideax-social/feedcore/pkg/internal/services/gemini"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	defaultGeneratorEndpoint = "https://generativelanguage.googleapis.com"
	defaultGeneratorModel    = "gemini-2.5-flash"
	defaultGeneratorTimeout  = 20 * time.Second
	defaultGeneratorBatch    = 4
)

// Hardcoded pool of known-good vertical videos promoted into batches so
// the feed always carries a predictable mix of media types, whatever the
// generation backend actually returned.
var reelVideoPool = []string{
	"https://videos.pexels.com/video-files/4434246/4434246-hd_720_1280_25fps.mp4",
	"https://videos.pexels.com/video-files/4690333/4690333-hd_720_1280_25fps.mp4",
	"https://videos.pexels.com/video-files/8130177/8130177-hd_720_1280_25fps.mp4",
	"https://videos.pexels.com/video-files/7578544/7578544-hd_720_1280_30fps.mp4",
	"https://videos.pexels.com/video-files/2882490/2882490-hd_720_1280_25fps.mp4",
}

// FetchFeedBatch asks the generative backend for one page of posts. It
// never fails: a missing API key, a fetch/parse error or the hard timeout
// all degrade to the seed dataset, so callers need no failure branch.
func FetchFeedBatch(ctx context.Context) []models.Post {
	apiKey := viper.GetString("generator.api_key")
	if len(apiKey) == 0 {
		log.Warn().Msg("Generator API key is not set, serving fallback content...")
		return SeedPosts()
	}

	endpoint := viper.GetString("generator.endpoint")
	if len(endpoint) == 0 {
		endpoint = defaultGeneratorEndpoint
	}
	model := viper.GetString("generator.model")
	if len(model) == 0 {
		model = defaultGeneratorModel
	}
	batchSize := viper.GetInt("generator.batch_size")
	if batchSize <= 0 {
		batchSize = defaultGeneratorBatch
	}
	timeout := viper.GetDuration("generator.timeout")
	if timeout <= 0 {
		timeout = defaultGeneratorTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	data, err := gemini.FetchBatch(ctx, endpoint, model, apiKey, batchSize)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to fetch generated content, serving fallback content...")
		return SeedPosts()
	}

	posts := lo.Map(data, func(item gemini.GeneratedPost, _ int) models.Post {
		return item.ToPost()
	})

	return PromoteVideos(posts)
}

// PromoteVideos rewrites the 2nd and 4th image-covered posts of a batch
// into reels: the cover becomes a video from the fixed pool and the
// original image is kept as its thumbnail.
func PromoteVideos(posts []models.Post) []models.Post {
	var videoIdx int
	for idx := range posts {
		if idx != 1 && idx != 3 {
			continue
		}
		if posts[idx].CoverMedia == nil || posts[idx].CoverMedia.Type != models.MediaTypeImage {
			continue
		}
		posts[idx].CoverMedia = &models.Media{
			Type:      models.MediaTypeVideo,
			URL:       reelVideoPool[videoIdx%len(reelVideoPool)],
			Thumbnail: posts[idx].CoverMedia.URL,
		}
		posts[idx].IsReel = true
		videoIdx++
	}
	return posts
}
