// Package testutil provides throwaway databases, configs and uploads for
// tests.
package testutil

import (
	"bytes"
	"mime/multipart"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"estate-cms/config"
	"estate-cms/logger"
)

// JWTSecret signs tokens in tests.
const JWTSecret = "test-secret-0123456789abcdef"

// PNG is the smallest byte sequence sniffed as image/png.
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

// NewDB opens a migrated SQLite database in a temporary directory.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := config.Open(config.DriverSQLite, filepath.Join(t.TempDir(), "test.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Config returns a configuration with temporary public and upload
// directories.
func Config(t testing.TB) *config.Config {
	t.Helper()
	public := t.TempDir()
	return &config.Config{
		Port:               "0",
		GinMode:            "test",
		DBDriver:           config.DriverSQLite,
		JWTSecret:          JWTSecret,
		JWTExpiration:      time.Hour,
		PublicDir:          public,
		UploadDir:          filepath.Join(public, "uploads"),
		MaxUploadBytes:     1 << 20,
		AllowedUploadTypes: []string{"image/*", "application/pdf"},
		LogLevel:           "disabled",
	}
}

// FileHeader builds a multipart file header as a parsed request would
// carry it.
func FileHeader(t testing.TB, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

// File is one file part of a multipart request.
type File struct {
	Field    string
	Filename string
	Content  []byte
}

// MultipartBody encodes fields and files and returns the body with its
// content type.
func MultipartBody(t testing.TB, fields map[string][]string, files ...File) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, w.WriteField(key, v))
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}
