package routes

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"waste-report-server/services"
)

// photoFromForm opens the optional image in field. The returned close func
// is never nil and must be called once the upload has been consumed.
func photoFromForm(c *gin.Context, field string) (*services.PhotoUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}

	log.Printf("📸 Received %s: %s, size: %d", field, header.Filename, header.Size)
	if header.Size <= 0 {
		return nil, noop, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, err
	}

	return &services.PhotoUpload{
		Filename:    header.Filename,
		ContentType: contentType(header),
		Size:        header.Size,
		Body:        file,
	}, func() { file.Close() }, nil
}

func contentType(h *multipart.FileHeader) string {
	if ct := h.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
