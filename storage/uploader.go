// Package storage writes uploaded files under the public uploads directory
// and maps them to the URL paths stored on resource records.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"estate-cms/models"
)

// URLPrefix is the public path the upload root is served under.
const URLPrefix = "/uploads"

// Buckets used by the resource handlers.
const (
	BucketProjects = "projects"
	BucketBlogs    = "blogs"
	BucketMedia    = "media"
)

// StoredFile describes a file written by Store.
type StoredFile struct {
	Filename     string
	OriginalName string
	MimeType     string
	Size         int64
	Path         string
}

// Uploader stores multipart files below root. Every file gets a fresh
// timestamp-qualified name and is created exclusively, so an existing file is
// never overwritten.
type Uploader struct {
	root     string
	maxBytes int64
	allowed  []string
	now      func() time.Time
}

// NewUploader returns an Uploader rooted at root. An empty allowed list
// accepts any content type; entries may use a wildcard subtype ("image/*").
func NewUploader(root string, maxBytes int64, allowed []string) *Uploader {
	normalized := make([]string, 0, len(allowed))
	for _, a := range allowed {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			normalized = append(normalized, a)
		}
	}
	return &Uploader{
		root:     root,
		maxBytes: maxBytes,
		allowed:  normalized,
		now:      time.Now,
	}
}

// Root returns the directory files are written to.
func (u *Uploader) Root() string {
	return u.root
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Store writes fh into the bucket directory, creating it when absent, and
// returns its metadata. prefix is prepended to the generated name.
func (u *Uploader) Store(fh *multipart.FileHeader, bucket, prefix string) (*StoredFile, error) {
	if fh == nil {
		return nil, models.NewValidationError("No file uploaded.")
	}
	if u.maxBytes > 0 && fh.Size > u.maxBytes {
		return nil, models.NewValidationError("File %s exceeds the maximum size of %d bytes", fh.Filename, u.maxBytes)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, fmt.Errorf("detecting type of %s: %w", fh.Filename, err)
	}
	mimeType, _, _ := strings.Cut(detected.String(), ";")
	if !u.accepts(mimeType) {
		return nil, models.NewValidationError("File type %s is not allowed", mimeType)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding upload %s: %w", fh.Filename, err)
	}

	dir := filepath.Join(u.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory %s: %w", dir, err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = detected.Extension()
	}
	prefix = unsafeChars.ReplaceAllString(prefix, "")
	if prefix == "" {
		prefix = "file"
	}
	name := fmt.Sprintf("%s-%d-%s%s", prefix, u.now().UnixMilli(), uuid.NewString()[:8], ext)
	target := filepath.Join(dir, name)

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", target, err)
	}

	reader := io.Reader(src)
	if u.maxBytes > 0 {
		reader = io.LimitReader(src, u.maxBytes+1)
	}
	size, copyErr := io.Copy(dst, reader)
	closeErr := dst.Close()
	if copyErr == nil && closeErr != nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		_ = os.Remove(target)
		return nil, fmt.Errorf("writing %s: %w", target, copyErr)
	}
	if u.maxBytes > 0 && size > u.maxBytes {
		_ = os.Remove(target)
		return nil, models.NewValidationError("File %s exceeds the maximum size of %d bytes", fh.Filename, u.maxBytes)
	}

	return &StoredFile{
		Filename:     name,
		OriginalName: fh.Filename,
		MimeType:     mimeType,
		Size:         size,
		Path:         path.Join(URLPrefix, bucket, name),
	}, nil
}

// StoreAll stores every file or none: on the first failure the files already
// written are removed again.
func (u *Uploader) StoreAll(files []*multipart.FileHeader, bucket, prefix string) ([]*StoredFile, error) {
	stored := make([]*StoredFile, 0, len(files))
	for _, fh := range files {
		sf, err := u.Store(fh, bucket, prefix)
		if err != nil {
			u.Discard(stored...)
			return nil, err
		}
		stored = append(stored, sf)
	}
	return stored, nil
}

// Discard removes files written by this request after a later step failed.
// Removal errors are ignored; the caller is already reporting a failure.
func (u *Uploader) Discard(files ...*StoredFile) {
	for _, f := range files {
		if f != nil {
			_ = u.Remove(f.Path)
		}
	}
}

// Remove deletes the file behind a public path returned by Store. A missing
// file is an error.
func (u *Uploader) Remove(publicPath string) error {
	local, err := u.LocalPath(publicPath)
	if err != nil {
		return err
	}
	if err := os.Remove(local); err != nil {
		return fmt.Errorf("removing %s: %w", local, err)
	}
	return nil
}

// LocalPath maps a public upload path to its location on disk, rejecting
// paths that would escape the upload root.
func (u *Uploader) LocalPath(publicPath string) (string, error) {
	clean := path.Clean("/" + publicPath)
	rel := strings.TrimPrefix(clean, URLPrefix+"/")
	if rel == clean || rel == "" {
		return "", ErrOutsideRoot
	}
	return filepath.Join(u.root, filepath.FromSlash(rel)), nil
}

// ErrOutsideRoot is returned for paths that are not below the upload prefix.
var ErrOutsideRoot = errors.New("path is outside the upload directory")

func (u *Uploader) accepts(mimeType string) bool {
	if len(u.allowed) == 0 {
		return true
	}
	mimeType = strings.ToLower(mimeType)
	for _, a := range u.allowed {
		if a == mimeType {
			return true
		}
		if major, ok := strings.CutSuffix(a, "/*"); ok && strings.HasPrefix(mimeType, major+"/") {
			return true
		}
	}
	return false
}
