package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lumina_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadService(t *testing.T) *UploadService {
	t.Helper()

	cfg := &structs.Config{
		Upload: &structs.UploadConfig{
			Dir:          t.TempDir(),
			MaxBytes:     50 * 1024 * 1024,
			PublicPrefix: "/uploads",
		},
	}
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))

	return NewUploadService(logger, cfg)
}

func TestValidateUpload(t *testing.T) {
	us := newTestUploadService(t)

	tests := []struct {
		name        string
		contentType string
		filename    string
		wantErr     bool
	}{
		{"jpeg", "image/jpeg", "photo.jpg", false},
		{"jpeg alt extension", "image/jpeg", "photo.jpeg", false},
		{"png", "image/png", "render.png", false},
		{"webp", "image/webp", "hero.webp", false},
		{"gif", "image/gif", "animation.gif", false},
		{"pdf", "application/pdf", "fiche-technique.pdf", false},
		{"uppercase extension", "image/png", "RENDER.PNG", false},
		{"content type with params", "image/png; charset=binary", "render.png", false},

		{"disallowed type", "application/zip", "archive.zip", true},
		{"svg rejected", "image/svg+xml", "icon.svg", true},
		{"extension mismatch", "image/png", "photo.jpg", true},
		{"no extension", "image/png", "render", true},
		{"executable disguised", "application/pdf", "malware.exe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := us.ValidateUpload(tt.contentType, tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveUpload(t *testing.T) {
	us := newTestUploadService(t)

	content := "fake png bytes"
	url, err := us.SaveUpload(strings.NewReader(content), "image/png", "render.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"), "url %q should be under the public prefix", url)
	assert.True(t, strings.HasSuffix(url, ".png"))

	// The stored name is randomized; the original name must not leak through.
	assert.NotContains(t, url, "render")

	stored := filepath.Join(us.cfg.Upload.Dir, filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestSaveUploadRejectsInvalidType(t *testing.T) {
	us := newTestUploadService(t)

	_, err := us.SaveUpload(strings.NewReader("blob"), "application/zip", "archive.zip")
	require.Error(t, err)

	entries, readErr := os.ReadDir(us.cfg.Upload.Dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "nothing should be written for a rejected upload")
}

func TestSaveUploadCreatesDirectory(t *testing.T) {
	us := newTestUploadService(t)
	us.cfg.Upload.Dir = filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := us.SaveUpload(strings.NewReader("pdf bytes"), "application/pdf", "doc.pdf")
	require.NoError(t, err)

	entries, err := os.ReadDir(us.cfg.Upload.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
