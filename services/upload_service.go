package services

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	// Register the decoders for the formats uploads arrive in. The
	// original filename and content type are never trusted for format
	// selection — decoding sniffs the bytes.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	fullMaxWidth  = 1600
	fullMaxHeight = 1200
	fullQuality   = 82

	thumbWidth   = 400
	thumbHeight  = 300
	thumbQuality = 72
)

// UploadResult carries the two relative derivative paths the caller
// persists into the content store.
type UploadResult struct {
	Path      string `json:"path"`
	ThumbPath string `json:"thumbPath"`
}

// UploadService turns raw uploaded bytes into two durable JPEG derivatives
// under a shared random base name. Every upload is re-encoded to the one
// fixed format, so the serving boundary never answers with an uploaded
// MIME type.
type UploadService struct {
	Root string
}

func NewUploadService(root string) (*UploadService, error) {
	for _, dir := range []string{"images", "thumbs"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &UploadService{Root: root}, nil
}

// Ingest decodes the input format-agnostically and writes the full-size
// derivative (fit within 1600x1200, never upscaled) and the thumbnail
// (cover-cropped to 400x300). The two writes are not transactional: a
// crash in between leaks a full image, it never corrupts anything, because
// nothing references the pair until the caller stores the returned paths.
func (s *UploadService) Ingest(data []byte) (*UploadResult, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(ErrValidation, fmt.Errorf("decode image: %w", err))
	}

	filename := strings.ReplaceAll(uuid.NewString(), "-", "") + ".jpg"

	full := imaging.Fit(src, fullMaxWidth, fullMaxHeight, imaging.Lanczos)
	if err := imaging.Save(full, filepath.Join(s.Root, "images", filename),
		imaging.JPEGQuality(fullQuality)); err != nil {
		return nil, fmt.Errorf("write full image: %w", err)
	}

	thumb := imaging.Fill(src, thumbWidth, thumbHeight, imaging.Center, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(s.Root, "thumbs", filename),
		imaging.JPEGQuality(thumbQuality)); err != nil {
		return nil, fmt.Errorf("write thumbnail: %w", err)
	}

	return &UploadResult{
		Path:      path.Join("images", filename),
		ThumbPath: path.Join("thumbs", filename),
	}, nil
}

// Remove deletes both derivatives for a path, best-effort. A missing file
// is a silent no-op.
func (s *UploadService) Remove(rel string) {
	name := path.Base(rel)
	for _, dir := range []string{"images", "thumbs"} {
		err := os.Remove(filepath.Join(s.Root, dir, name))
		if err != nil && !os.IsNotExist(err) {
			log.Printf("remove upload %s: %v", rel, err)
		}
	}
}

// Resolve joins a relative derivative path onto the upload root. It does
// no existence check and no traversal sanitization — the serving boundary
// rejects parent-directory segments before calling it.
func (s *UploadService) Resolve(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}
