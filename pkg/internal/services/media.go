package services

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ideax-social/feedcore/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// PlaceholderThumbnailURL substitutes a video thumbnail whenever
// derivation is unavailable or fails.
const PlaceholderThumbnailURL = "https://picsum.photos/seed/placeholder/1080/1920"

// Thumbnailer derives a still-frame thumbnail URL from raw video data.
type Thumbnailer interface {
	Thumbnail(data []byte, mime string) (string, error)
}

// MediaResolver turns opaque media uploads into consumable Media records.
// Thumb is optional; without it every video falls back to the
// placeholder thumbnail.
type MediaResolver struct {
	Thumb Thumbnailer
}

// ResolveUpload converts an upload into a Media record with a data URL.
// Thumbnail derivation failures are absorbed with the placeholder; an
// unsupported mime type is the only error path.
func (r *MediaResolver) ResolveUpload(upload models.MediaUpload) (models.Media, error) {
	url := fmt.Sprintf("data:%s;base64,%s", upload.Mime, base64.StdEncoding.EncodeToString(upload.Data))

	switch {
	case strings.HasPrefix(upload.Mime, "image/"):
		return models.Media{Type: models.MediaTypeImage, URL: url}, nil
	case strings.HasPrefix(upload.Mime, "video/"):
		media := models.Media{Type: models.MediaTypeVideo, URL: url}
		if r.Thumb == nil {
			media.Thumbnail = PlaceholderThumbnailURL
			return media, nil
		}
		thumbnail, err := r.Thumb.Thumbnail(upload.Data, upload.Mime)
		if err != nil {
			log.Warn().Err(err).Str("mime", upload.Mime).Msg("Failed to derive video thumbnail, using placeholder...")
			media.Thumbnail = PlaceholderThumbnailURL
			return media, nil
		}
		media.Thumbnail = thumbnail
		return media, nil
	default:
		return models.Media{}, fmt.Errorf("unsupported media type: %s", upload.Mime)
	}
}
