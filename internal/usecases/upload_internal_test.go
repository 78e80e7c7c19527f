package usecases

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rewear.backend/internal/domain/entities"
)

func TestInspectImage(t *testing.T) {
	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")

	t.Run("keeps every byte readable", func(t *testing.T) {
		upload := &entities.Upload{Filename: "a.gif", Size: int64(len(gif)), Content: bytes.NewReader(gif)}
		require.NoError(t, inspectImage("icon", upload, 0))
		assert.Equal(t, "image/gif", upload.ContentType)
		got, err := io.ReadAll(upload.Content)
		require.NoError(t, err)
		assert.Equal(t, gif, got)
	})

	t.Run("too large", func(t *testing.T) {
		upload := &entities.Upload{Filename: "a.gif", Size: 3 * 1024 * 1024, Content: bytes.NewReader(gif)}
		err := inspectImage("icon", upload, 2048*1024)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2048 kilobytes")
	})

	t.Run("svg is rejected", func(t *testing.T) {
		svg := `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`
		upload := &entities.Upload{Filename: "Icon.SVG", Size: int64(len(svg)), Content: strings.NewReader(svg)}
		assert.Error(t, inspectImage("icon", upload, 0))
	})

	t.Run("html named as an image", func(t *testing.T) {
		page := `<html><script>alert(1)</script></html>`
		upload := &entities.Upload{Filename: "avatar.gif", Size: int64(len(page)), Content: strings.NewReader(page)}
		assert.Error(t, inspectImage("icon", upload, 0))
	})

	t.Run("empty", func(t *testing.T) {
		upload := &entities.Upload{Filename: "a.png", Content: bytes.NewReader(nil)}
		assert.Error(t, inspectImage("icon", upload, 0))
	})
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	got := startOfDay(time.Date(2026, 3, 10, 23, 59, 1, 5, loc))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), got)
}
