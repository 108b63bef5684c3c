package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"resume-builder/internal/shared/storage/object"
)

// KeyPrefix is the object-store namespace for profile pictures.
const KeyPrefix = "uploads/"

// Pictures larger than this are scaled down to fit before storage.
const maxPictureDim = 600

var (
	// ErrUnsupportedType indicates the declared media type is not an allowed image type.
	ErrUnsupportedType = errors.New("unsupported media type")

	// ErrInvalidImage indicates the file body could not be decoded as an image.
	ErrInvalidImage = errors.New("invalid image data")

	// ErrStoreFailed indicates the picture could not be written to storage.
	ErrStoreFailed = errors.New("file upload error")
)

var allowedFormats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
}

var defaultExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// Store validates and persists profile pictures.
type Store struct {
	Objects object.ObjectStore
}

// NewStore constructs a Store backed by the given object store.
func NewStore(objects object.ObjectStore) *Store {
	return &Store{Objects: objects}
}

// Key maps a stored picture file name to its object-store key.
func Key(fileName string) string {
	return path.Join(KeyPrefix, fileName)
}

// StorePicture persists an optional profile picture and returns its public
// path, or "" when no file was supplied. The stored name is a fresh UUID
// with the original extension when it is a plain suffix, otherwise the
// media type's canonical one. JPEG and PNG bodies are decoded and scaled
// down to fit 600x600; GIFs are stored verbatim to keep animation intact.
func (s *Store) StorePicture(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}

	contentType := mediaType(fh.Header.Get("Content-Type"))
	format, ok := allowedFormats[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	var body io.Reader = f
	if format != imaging.GIF {
		normalized, err := normalize(f, format)
		if err != nil {
			return "", err
		}
		body = normalized
	}

	fileName := uuid.NewString() + safeExt(fh.Filename, contentType)
	if _, err := s.Objects.Save(ctx, Key(fileName), contentType, body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	return "/uploads/" + fileName, nil
}

// normalize decodes the picture and scales it down to fit the bounding box.
func normalize(r io.Reader, format imaging.Format) (io.Reader, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxPictureDim || bounds.Dy() > maxPictureDim {
		img = imaging.Fit(img, maxPictureDim, maxPictureDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return nil, fmt.Errorf("encode picture: %w", err)
	}
	return &buf, nil
}

// safeExt returns the client-supplied extension when it is a plain
// dot-and-alphanumerics suffix, and falls back to the canonical extension
// of the validated media type otherwise. The client name never contributes
// anything else to the stored key.
func safeExt(fileName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(fileName)))
	if plainExt(ext) {
		return ext
	}
	return defaultExts[contentType]
}

func plainExt(ext string) bool {
	if len(ext) < 2 || ext[0] != '.' {
		return false
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func mediaType(raw string) string {
	mt := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}
