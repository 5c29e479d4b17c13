package storage

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	thumbnailSize = 300
	maxImageWidth = 1920
)

// SavedFile describes a file persisted by the disk store.
type SavedFile struct {
	StoredFilename string
	Category       string
	FilePath       string
	FileURL        string
	FileSize       int64
	MimeType       string
	Extension      string
	Hash           string
	ThumbnailURL   *string
}

// DiskStore writes uploads under baseDir/<category>/ and serves them from
// baseURL. Images get a thumbnail and are downscaled to a sane width.
type DiskStore struct {
	baseDir string
	baseURL string
}

func NewDiskStore(baseDir, baseURL string) *DiskStore {
	return &DiskStore{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Save validates the upload, writes it to disk under the category directory
// and returns the stored metadata. Image content is re-encoded: downscaled
// to maxImageWidth when wider, with a thumbnailSize square thumbnail.
func (s *DiskStore) Save(originalFilename string, content []byte, category string) (*SavedFile, error) {
	mimeType, err := Validate(originalFilename, content)
	if err != nil {
		return nil, err
	}

	// the category becomes a path segment, so it is never taken verbatim
	category = SanitizeCategory(category)
	if category == "" {
		category = categoryForMime(mimeType)
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	stem := sanitizeStem(strings.TrimSuffix(filepath.Base(originalFilename), filepath.Ext(originalFilename)))
	storedName := fmt.Sprintf("%d_%s_%s%s", time.Now().Unix(), uuid.NewString()[:8], stem, ext)

	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var thumbnailURL *string
	if isRasterImage(ext) {
		img, err := imaging.Decode(bytes.NewReader(content))
		if err == nil {
			content, err = s.optimize(img, ext)
			if err != nil {
				return nil, err
			}

			thumbName := "thumb_" + storedName
			if err := s.writeThumbnail(img, filepath.Join(dir, thumbName), ext); err == nil {
				url := s.baseURL + "/" + category + "/" + thumbName
				thumbnailURL = &url
			}
		}
	}

	path := filepath.Join(dir, storedName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(content)

	return &SavedFile{
		StoredFilename: storedName,
		Category:       category,
		FilePath:       path,
		FileURL:        s.baseURL + "/" + category + "/" + storedName,
		FileSize:       int64(len(content)),
		MimeType:       mimeType,
		Extension:      ext,
		Hash:           hex.EncodeToString(sum[:]),
		ThumbnailURL:   thumbnailURL,
	}, nil
}

// Remove deletes the stored file and its thumbnail if one exists. Missing
// files are not an error, the metadata row is the source of truth.
func (s *DiskStore) Remove(filePath string, thumbnailURL *string) error {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	if thumbnailURL != nil {
		thumbPath := filepath.Join(filepath.Dir(filePath), filepath.Base(*thumbnailURL))
		if err := os.Remove(thumbPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (s *DiskStore) optimize(img image.Image, ext string) ([]byte, error) {
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}
	return encodeImage(img, ext)
}

func (s *DiskStore) writeThumbnail(img image.Image, path, ext string) error {
	thumb := imaging.Fill(img, thumbnailSize, thumbnailSize, imaging.Center, imaging.Lanczos)
	data, err := encodeImage(thumb, ext)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func encodeImage(img image.Image, ext string) ([]byte, error) {
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isRasterImage(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

// SanitizeCategory reduces a client-supplied category to a single safe
// path segment. Anything outside [a-z0-9-_] is dropped, so traversal
// sequences cannot survive. Returns "" when nothing safe remains.
func SanitizeCategory(category string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(category) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > 40 {
		out = out[:40]
	}
	return out
}

// categoryForMime picks the storage directory from the sniffed MIME type
// when the client did not name a usable category.
func categoryForMime(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "images"
	case mimeType == "application/pdf":
		return "documents"
	}
	return "files"
}

// sanitizeStem keeps the stored name filesystem and URL safe.
func sanitizeStem(stem string) string {
	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		out = "file"
	}
	if len(out) > 40 {
		out = out[:40]
	}
	return out
}
