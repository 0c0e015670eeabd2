// Package importer loads landmark folders and their images into the store.
//
// The data directory holds one subfolder per landmark:
//
//	data/
//	├── bobby_dodd/
//	│   ├── Image_1.jpg
//	│   └── ...
//	└── tech_tower/
//	    └── ...
//
// Each image is stored under the key "<folder>/<filename>" and linked from
// the landmark's training images as /api/images/<escaped key>.
package importer

//go:generate mockgen -source=importer.go -destination=mock_importer_test.go -package=importer

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// ImageURLPrefix is the public path under which stored images are served.
const ImageURLPrefix = "/api/images/"

// DefaultDescription is used for folders without a known description.
const DefaultDescription = "A landmark at Georgia Tech."

var displayNames = map[string]string{
	"bobby_dodd": "Bobby Dodd Stadium",
	"culc":       "Clough Undergraduate Learning Commons",
	"kendeda":    "Kendeda Building",
	"mccamish":   "McCamish Pavilion",
	"tech_tower": "Tech Tower",
}

var descriptions = map[string]string{
	"bobby_dodd": "Bobby Dodd Stadium at Historic Grant Field is the football stadium for Georgia Tech.",
	"culc":       "A modern learning and collaboration space at the heart of campus, opened in 2011.",
	"kendeda":    "The Kendeda Building for Innovative Sustainable Design is a Living Building on campus.",
	"mccamish":   "McCamish Pavilion is the home arena for Georgia Tech Yellow Jackets basketball.",
	"tech_tower": "The iconic administration building and symbol of Georgia Tech since 1888.",
}

// LandmarkStore is the landmark side of the store used by the importer.
type LandmarkStore interface {
	GetByName(ctx context.Context, name string) (*models.Landmark, error)                                    // Returns nil when absent
	Save(ctx context.Context, landmark *models.Landmark) error                                               // Inserts a landmark
	UpdateImages(ctx context.Context, id uuid.UUID, images models.TrainingImages, thumbnailURL string) error // Replaces images and thumbnail
}

// ImageStore is the blob side of the store used by the importer.
type ImageStore interface {
	Exists(ctx context.Context, filename string) (bool, error)   // Reports whether a blob exists
	Save(ctx context.Context, image *models.Image) (bool, error) // Stores a blob unless present
}

// Report summarises an import run.
type Report struct {
	Landmarks        int // Folders processed
	CreatedLandmarks int // Landmarks that did not exist before
	Images           int // Images linked to landmarks
	Uploaded         int // Blobs written
	AlreadyStored    int // Blobs that were already present
	SkippedFiles     int // Files that are not images
}

// Importer walks a data directory and loads it into the store.
type Importer struct {
	landmarks LandmarkStore
	images    ImageStore
}

// New creates a new Importer.
func New(landmarks LandmarkStore, images ImageStore) *Importer {
	return &Importer{
		landmarks: landmarks,
		images:    images,
	}
}

// Describe returns the display name and description for a landmark folder.
// Unknown folders get a title-cased name and a generic description.
func Describe(folder string) (name, description string) {
	name, ok := displayNames[folder]
	if !ok {
		name = titleCase(strings.ReplaceAll(folder, "_", " "))
	}
	description, ok = descriptions[folder]
	if !ok {
		description = DefaultDescription
	}
	return name, description
}

// ImageURL returns the public URL of the blob stored under key.
func ImageURL(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return ImageURLPrefix + strings.Join(segments, "/")
}

// Run imports every non-hidden subfolder of fsys in name order. Existing
// landmarks are matched by display name and existing blobs are not
// rewritten. A landmark's images and thumbnail are replaced only when the
// folder contains at least one image.
func (im *Importer) Run(ctx context.Context, fsys fs.FS) (*Report, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	report := &Report{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if err := im.importFolder(ctx, fsys, entry.Name(), report); err != nil {
			return report, err
		}
		report.Landmarks++
	}
	return report, nil
}

func (im *Importer) importFolder(ctx context.Context, fsys fs.FS, folder string, report *Report) error {
	name, description := Describe(folder)

	landmark, err := im.landmarks.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("get landmark %q: %w", name, err)
	}
	if landmark == nil {
		landmark = &models.Landmark{
			Name:           name,
			FullName:       name,
			Description:    description,
			FunFacts:       models.StringList{},
			TrainingImages: models.TrainingImages{},
		}
		if err := im.landmarks.Save(ctx, landmark); err != nil {
			return fmt.Errorf("save landmark %q: %w", name, err)
		}
		report.CreatedLandmarks++
		logger.Log.Infow("landmark created", "name", name, "folder", folder)
	} else {
		logger.Log.Infow("landmark found", "name", name, "folder", folder)
	}

	files, err := fs.ReadDir(fsys, folder)
	if err != nil {
		return fmt.Errorf("read folder %q: %w", folder, err)
	}
	// fs.ReadDir returns entries sorted by filename.

	images := models.TrainingImages{}
	for _, file := range files {
		if file.IsDir() || strings.HasPrefix(file.Name(), ".") {
			continue
		}

		img, err := im.importFile(ctx, fsys, folder, file.Name(), name, report)
		if err != nil {
			return err
		}
		if img != nil {
			images = append(images, *img)
		}
	}

	if len(images) == 0 {
		logger.Log.Warnw("no images found", "folder", folder)
		return nil
	}

	if err := im.landmarks.UpdateImages(ctx, landmark.ID, images, images[0].URL); err != nil {
		return fmt.Errorf("update images of %q: %w", name, err)
	}
	report.Images += len(images)
	logger.Log.Infow("images linked", "name", name, "count", len(images))
	return nil
}

// importFile stores one file and returns its training image entry, or nil
// when the file is not an image.
func (im *Importer) importFile(ctx context.Context, fsys fs.FS, folder, filename, landmarkName string, report *Report) (*models.TrainingImage, error) {
	data, err := fs.ReadFile(fsys, path.Join(folder, filename))
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", folder, filename, err)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		logger.Log.Warnw("skipping non-image", "file", filename, "mime", mtype.String())
		report.SkippedFiles++
		return nil, nil
	}

	key := folder + "/" + filename
	exists, err := im.images.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("check image %q: %w", key, err)
	}
	if exists {
		report.AlreadyStored++
		logger.Log.Debugw("image already stored", "key", key)
	} else {
		written, err := im.images.Save(ctx, &models.Image{
			Filename:     key,
			ContentType:  mtype.String(),
			LandmarkName: landmarkName,
			Data:         data,
		})
		if err != nil {
			return nil, fmt.Errorf("save image %q: %w", key, err)
		}
		if written {
			report.Uploaded++
			logger.Log.Infow("image uploaded", "key", key, "size", len(data))
		} else {
			report.AlreadyStored++
		}
	}

	return &models.TrainingImage{
		URL:         ImageURL(key),
		Description: filename,
		ContentType: mtype.String(),
	}, nil
}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
