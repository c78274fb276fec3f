package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadSize is the ceiling for a single uploaded file (5MB).
const MaxUploadSize = 5 * 1024 * 1024

var (
	ErrNotAnImage = errors.New("only image files are allowed")
	ErrFileTooBig = errors.New("file too large, maximum size is 5MB")
)

// ValidateImageUpload rejects non-image and oversized files. It is called
// before anything is written to disk.
func ValidateImageUpload(file *multipart.FileHeader) error {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return ErrNotAnImage
	}
	if file.Size > MaxUploadSize {
		return ErrFileTooBig
	}
	return nil
}

// SaveUploadedFile validates and stores an uploaded image under destDir,
// returning the generated filename. Names combine a timestamp and a random
// suffix so they cannot be guessed.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	if err := ValidateImageUpload(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102150405"), uuid.NewString(), ext)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", err
	}

	return newFilename, nil
}

// GetFileURL maps a stored filename onto its public URL path.
func GetFileURL(baseURL, filename string) string {
	if filename == "" {
		return ""
	}
	return baseURL + "/uploads/" + filename
}
