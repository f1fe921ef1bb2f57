package services

import (
	"mime/multipart"

	"golang.org/x/crypto/bcrypt"

	"estate-cms/storage"
)

// FileStore is the part of the upload handler the services depend on.
type FileStore interface {
	Store(fh *multipart.FileHeader, bucket, prefix string) (*storage.StoredFile, error)
	StoreAll(files []*multipart.FileHeader, bucket, prefix string) ([]*storage.StoredFile, error)
	Discard(files ...*storage.StoredFile)
	Remove(publicPath string) error
}

// PasswordCost is the bcrypt cost used for new hashes. Tests lower it.
var PasswordCost = bcrypt.DefaultCost

func hashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func checkPassword(hashed, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}
