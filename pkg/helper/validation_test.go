package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMimeTypeFromExtension(t *testing.T) {
	assert.Equal(t, "image/heic", GetMimeTypeFromExtension("IMG_0001.HEIC"))
	assert.Equal(t, "image/jpeg", GetMimeTypeFromExtension("a/b/photo.jpeg"))
	assert.Equal(t, "application/octet-stream", GetMimeTypeFromExtension("movie.mp4"))
}

func TestIsHEIC(t *testing.T) {
	assert.True(t, IsHEIC("image/heic"))
	assert.False(t, IsHEIC("image/heif"))
	assert.False(t, IsHEIC("IMAGE/HEIC"))
	assert.False(t, IsHEIC(" image/heic"))
	assert.False(t, IsHEIC("image/jpeg"))
	assert.False(t, IsHEIC(""))
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("photo.heic"))
	assert.True(t, IsImageFile("photo.png"))
	assert.False(t, IsImageFile("notes.txt"))
}
