package services

//go:generate mockgen -source=image.go -destination=mock_image_test.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// ImageReader reads image blobs from the store.
type ImageReader interface {
	GetByFilename(ctx context.Context, filename string) (*models.Image, error) // Returns nil when absent
}

// ImageCache caches image blobs.
type ImageCache interface {
	Get(ctx context.Context, filename string) (*models.Image, error) // Returns nil on a miss
	Set(ctx context.Context, image *models.Image) error              // Stores an image
}

// ImageService serves stored images, reading through an optional cache.
type ImageService struct {
	images ImageReader
	cache  ImageCache
}

// NewImageService creates a new ImageService. cache may be nil.
func NewImageService(images ImageReader, cache ImageCache) *ImageService {
	return &ImageService{
		images: images,
		cache:  cache,
	}
}

// Get returns the image stored under filename. A missing content type is
// reported as application/octet-stream.
func (s *ImageService) Get(ctx context.Context, filename string) (*models.Image, error) {
	if filename == "" {
		return nil, ErrImageNotFound
	}

	if s.cache != nil {
		img, err := s.cache.Get(ctx, filename)
		if err != nil {
			logger.Log.Warnw("image cache read failed", "filename", filename, "error", err)
		} else if img != nil {
			return withContentType(img), nil
		}
	}

	img, err := s.images.GetByFilename(ctx, filename)
	if err != nil {
		logger.Log.Errorw("failed to get image", "filename", filename, "error", err)
		return nil, err
	}
	if img == nil {
		return nil, ErrImageNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, img); err != nil {
			logger.Log.Errorw("failed to cache image", "filename", filename, "error", err)
		}
	}

	return withContentType(img), nil
}

func withContentType(img *models.Image) *models.Image {
	if img.ContentType == "" {
		img.ContentType = models.DefaultContentType
	}
	return img
}
