package services

import (
	"fmt"
	"io"
	"lumina_server/structs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// allowedUploadTypes maps accepted MIME types to the extensions they may carry.
var allowedUploadTypes = map[string][]string{
	"image/jpeg":      {".jpg", ".jpeg"},
	"image/png":       {".png"},
	"image/webp":      {".webp"},
	"image/gif":       {".gif"},
	"application/pdf": {".pdf"},
}

// UploadService writes raw upload streams into a fixed local directory under a
// randomized filename. Size enforcement happens upstream via the request body
// limit; oversized streams abort mid-copy.
type UploadService struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewUploadService(logger *gecho.Logger, cfg *structs.Config) *UploadService {
	return &UploadService{
		logger: logger,
		cfg:    cfg,
	}
}

// ValidateUpload checks the declared content type and filename extension
// against the allow-list.
func (us *UploadService) ValidateUpload(contentType, filename string) error {
	mediaType := contentType
	if idx := strings.Index(mediaType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(mediaType[:idx])
	}

	extensions, ok := allowedUploadTypes[mediaType]
	if !ok {
		return fmt.Errorf("content type %q is not allowed", mediaType)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range extensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("extension %q does not match content type %q", ext, mediaType)
}

// SaveUpload streams the body to disk and returns the public URL of the saved
// file. The stored filename is randomized; the original name only contributes
// its extension.
func (us *UploadService) SaveUpload(body io.Reader, contentType, filename string) (string, error) {
	if err := us.ValidateUpload(contentType, filename); err != nil {
		return "", err
	}

	if err := os.MkdirAll(us.cfg.Upload.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	storedName := uuid.New().String() + ext
	dest := filepath.Join(us.cfg.Upload.Dir, storedName)

	file, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	written, err := io.Copy(file, body)
	closeErr := file.Close()
	if err != nil {
		// Aborted mid-stream (size ceiling or client disconnect): drop the partial file.
		if removeErr := os.Remove(dest); removeErr != nil {
			us.logger.Warn("Failed to remove partial upload", gecho.Field("error", removeErr), gecho.Field("file", dest))
		}
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to close upload file: %w", closeErr)
	}

	us.logger.Info("Upload stored",
		gecho.Field("file", storedName),
		gecho.Field("bytes", written),
		gecho.Field("content_type", contentType))

	return path.Join(us.cfg.Upload.PublicPrefix, storedName), nil
}
