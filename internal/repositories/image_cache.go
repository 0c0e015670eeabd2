package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

const (
	imageCacheKeyPrefix   = "image:"
	imageFieldContentType = "content_type"
	imageFieldData        = "data"
)

// ImageCacheRepository caches image content in Redis.
// Uploaded images never change, so entries only expire.
type ImageCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached images
}

// NewImageCacheRepository creates a new cache repository with the given TTL.
func NewImageCacheRepository(client *redis.Client, expiration time.Duration) *ImageCacheRepository {
	return &ImageCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached image or nil on a cache miss.
func (r *ImageCacheRepository) Get(ctx context.Context, filename string) (*models.Image, error) {
	key := imageCacheKeyPrefix + filename

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("image cache get",
			"key", key,
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	data, ok := fields[imageFieldData]
	if !ok {
		logger.Log.Infow("image cache get",
			"key", key,
			"result", "miss",
			"error", nil,
		)
		return nil, nil
	}

	logger.Log.Infow("image cache get",
		"key", key,
		"result", "hit",
		"size", len(data),
		"error", nil,
	)

	return &models.Image{
		Filename:    filename,
		ContentType: fields[imageFieldContentType],
		Data:        []byte(data),
	}, nil
}

// Set caches the image content and content type with expiration.
func (r *ImageCacheRepository) Set(ctx context.Context, image *models.Image) error {
	key := imageCacheKeyPrefix + image.Filename

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			imageFieldContentType, image.ContentType,
			imageFieldData, image.Data,
		)
		pipe.Expire(ctx, key, r.exp)
		return nil
	})

	logger.Log.Infow("image cache set",
		"key", key,
		"size", len(image.Data),
		"result", "ok",
		"error", err,
	)

	return err
}
