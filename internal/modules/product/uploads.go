package product

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
)

// imageExtensions maps the accepted upload content types to a file extension.
var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

// ImageStore keeps uploaded product images and hands back the stored file name.
type ImageStore interface {
	Save(img *Image) (string, error)
	Remove(filename string) error
}

// DiskStore writes images into a directory that is served as static files.
type DiskStore struct {
	dir string
	now func() time.Time
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, now: time.Now}, nil
}

// Save stores img as <name-with-dashes>-<unix millis>.<ext>.
func (s *DiskStore) Save(img *Image) (string, error) {
	ext, ok := imageExtensions[img.ContentType]
	if !ok {
		return "", apperr.Validation("invalid image type %q", img.ContentType)
	}
	base := strings.Join(strings.Fields(filepath.Base(img.Filename)), "-")
	name := fmt.Sprintf("%s-%d.%s", base, s.now().UnixMilli(), ext)

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", apperr.Persistence(err, "create image file")
	}
	if _, err := io.Copy(f, img.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", apperr.Persistence(err, "write image file")
	}
	if err := f.Close(); err != nil {
		return "", apperr.Persistence(err, "close image file")
	}
	return name, nil
}

func (s *DiskStore) Remove(filename string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}
