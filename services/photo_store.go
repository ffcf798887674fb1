package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"waste-report-server/config"
)

// CloudinaryStore keeps complaint photos in a Cloudinary account
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore prefers CLOUDINARY_URL and falls back to the separate credentials.
// It returns nil and no error when nothing is configured.
func NewCloudinaryStore(cfg config.CloudinaryConfig) (*CloudinaryStore, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case cfg.URL != "":
		cld, err = cloudinary.NewFromURL(cfg.URL)
	case cfg.CloudName != "" && cfg.APIKey != "" && cfg.APISecret != "":
		log.Printf("🔧 Using Cloudinary URL: cloudinary://%s:***@%s", cfg.APIKey, cfg.CloudName)
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStore{cld: cld}, nil
}

// Upload stores r under key (folder/name) and returns the Cloudinary public id
func (s *CloudinaryStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	folder, name := path.Split(key)
	name = strings.TrimSuffix(name, path.Ext(name))

	overwrite := true
	unique := false
	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         strings.TrimSuffix(folder, "/"),
		PublicID:       name,
		Overwrite:      &overwrite,
		UniqueFilename: &unique,
		ResourceType:   "image",
	})
	if err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", errors.New(result.Error.Message)
	}
	log.Printf("📸 Uploaded %s (%s, %d bytes)", result.PublicID, contentType, result.Bytes)
	return result.PublicID, nil
}

func (s *CloudinaryStore) PublicURL(publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", err
	}
	return img.String()
}
