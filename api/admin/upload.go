package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// Upload handles POST /admin/upload. The file arrives as the raw request body
// with its type in Content-Type and its original name in X-Filename; the
// response carries the public URL of the stored file.
func (a *AdminRoutesManager) Upload(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	filename := r.Header.Get("X-Filename")

	if contentType == "" || filename == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.upload.missingHeaders"),
			gecho.WithData("Content-Type and X-Filename headers are required"),
			gecho.Send(),
		)
		return
	}

	body := http.MaxBytesReader(w, r.Body, a.cfg.Upload.MaxBytes)
	defer body.Close()

	url, err := a.uploadService.SaveUpload(body, contentType, filename)
	if err != nil {
		a.logger.Warn("Upload rejected",
			gecho.Field("error", err),
			gecho.Field("content_type", contentType),
			gecho.Field("filename", filename))
		gecho.BadRequest(w,
			gecho.WithMessage("error.upload.rejected"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"url": url}),
		gecho.Send(),
	)
}
