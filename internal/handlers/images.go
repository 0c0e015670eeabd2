package handlers

//go:generate mockgen -source=images.go -destination=mock_images_test.go -package=handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// ImageCacheControl is sent with every served image.
const ImageCacheControl = "public, max-age=86400"

// ImageGetter returns stored images.
type ImageGetter interface {
	Get(ctx context.Context, filename string) (*models.Image, error)
}

// NewImageHandler returns an HTTP handler serving raw image bytes. The
// filename is the rest of the path after /api/images/ and may contain
// slashes.
// @Summary Serve image
// @Description Returns stored image bytes with a one day cache header
// @Tags images
// @Produce octet-stream
// @Param filename path string true "Image key, e.g. tech_tower/front.jpg"
// @Success 200 {file} binary "Image bytes"
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /images/{filename} [get]
func NewImageHandler(svc ImageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "*")
		// chi matches on the raw path when one is present.
		if r.URL.RawPath != "" {
			if unescaped, err := url.PathUnescape(filename); err == nil {
				filename = unescaped
			}
		}

		img, err := svc.Get(r.Context(), filename)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", img.ContentType)
		w.Header().Set("Cache-Control", ImageCacheControl)
		w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(img.Data); err != nil {
			logger.Log.Errorw("failed to write image", "filename", filename, "error", err)
		}
	}
}
