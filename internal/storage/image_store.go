package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Size caps per image kind.
const (
	MaxProductImageSize = 5 << 20 // 5MB
	MaxLogoSize         = 2 << 20 // 2MB
)

var (
	ErrImageTooLarge   = errors.New("image exceeds the maximum allowed size")
	ErrUnsupportedType = errors.New("unsupported image type (allowed: JPEG, PNG, GIF, WebP)")
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore validates and persists uploaded images on local disk and
// returns publicly resolvable URLs. The upload directory is served
// statically by the HTTP layer.
type ImageStore struct {
	dir       string
	publicURL string
}

func NewImageStore(dir, publicURL string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: dir, publicURL: publicURL}, nil
}

// Validate sniffs the content type and checks the size cap. The declared
// Content-Type header is ignored; only the bytes decide.
func Validate(data []byte, maxSize int) (ext string, err error) {
	if len(data) > maxSize {
		return "", ErrImageTooLarge
	}
	mime := mimetype.Detect(data)
	ext, ok := allowedTypes[mime.String()]
	if !ok {
		return "", ErrUnsupportedType
	}
	return ext, nil
}

// SaveProductImage stores a product image (5MB cap) and returns its URL.
func (s *ImageStore) SaveProductImage(data []byte) (string, error) {
	return s.save(data, MaxProductImageSize, "products")
}

// SaveLogo stores a store logo (2MB cap) and returns its URL.
func (s *ImageStore) SaveLogo(data []byte) (string, error) {
	return s.save(data, MaxLogoSize, "logos")
}

func (s *ImageStore) save(data []byte, maxSize int, subdir string) (string, error) {
	ext, err := Validate(data, maxSize)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/uploads/%s/%s", s.publicURL, subdir, name), nil
}
