package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: "upload.png",
		Header:   h,
		Size:     size,
	}
}

func TestValidateImageUpload(t *testing.T) {
	assert.NoError(t, ValidateImageUpload(header("image/png", 1024)))
	assert.NoError(t, ValidateImageUpload(header("image/jpeg", MaxUploadSize)))

	// The type check runs first, so a huge PDF reports the type error
	assert.ErrorIs(t, ValidateImageUpload(header("application/pdf", 1024)), ErrNotAnImage)
	assert.ErrorIs(t, ValidateImageUpload(header("text/html", 10*1024*1024)), ErrNotAnImage)

	assert.ErrorIs(t, ValidateImageUpload(header("image/png", MaxUploadSize+1)), ErrFileTooBig)
	assert.ErrorIs(t, ValidateImageUpload(header("image/png", 6*1024*1024)), ErrFileTooBig)
}

func TestGetFileURL(t *testing.T) {
	assert.Equal(t, "http://localhost:5000/uploads/a.png", GetFileURL("http://localhost:5000", "a.png"))
	assert.Empty(t, GetFileURL("http://localhost:5000", ""))
}
