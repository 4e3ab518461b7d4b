package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideax-social/feedcore/pkg/internal/models"
)

type stubThumbnailer struct {
	url string
	err error
}

func (s stubThumbnailer) Thumbnail(_ []byte, _ string) (string, error) {
	return s.url, s.err
}

func TestMediaResolver_Image(t *testing.T) {
	r := &MediaResolver{}

	media, err := r.ResolveUpload(models.MediaUpload{Data: []byte("pngbytes"), Mime: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, models.MediaTypeImage, media.Type)
	assert.Equal(t, fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString([]byte("pngbytes"))), media.URL)
	assert.Empty(t, media.Thumbnail)
}

func TestMediaResolver_VideoWithoutThumbnailer(t *testing.T) {
	r := &MediaResolver{}

	media, err := r.ResolveUpload(models.MediaUpload{Data: []byte("mp4"), Mime: "video/mp4"})
	require.NoError(t, err)
	assert.Equal(t, models.MediaTypeVideo, media.Type)
	assert.Equal(t, PlaceholderThumbnailURL, media.Thumbnail)
}

func TestMediaResolver_VideoThumbnailFailure(t *testing.T) {
	r := &MediaResolver{Thumb: stubThumbnailer{err: errors.New("no keyframe")}}

	media, err := r.ResolveUpload(models.MediaUpload{Data: []byte("mp4"), Mime: "video/mp4"})
	require.NoError(t, err, "thumbnail failure must not block resolution")
	assert.Equal(t, PlaceholderThumbnailURL, media.Thumbnail)
}

func TestMediaResolver_VideoThumbnail(t *testing.T) {
	r := &MediaResolver{Thumb: stubThumbnailer{url: "data:image/jpeg;base64,AAAA"}}

	media, err := r.ResolveUpload(models.MediaUpload{Data: []byte("mp4"), Mime: "video/mp4"})
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", media.Thumbnail)
}

func TestMediaResolver_UnsupportedMime(t *testing.T) {
	r := &MediaResolver{}

	_, err := r.ResolveUpload(models.MediaUpload{Data: []byte("%PDF"), Mime: "application/pdf"})
	require.Error(t, err)
}
