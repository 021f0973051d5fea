package helper

import (
	"path/filepath"
	"strings"

	"image-previewer/pkg/constants"
)

func GetMimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return constants.MimeJPEG
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	case ".heic":
		return constants.MimeHEIC
	case ".heif":
		return constants.MimeHEIF
	default:
		return "application/octet-stream"
	}
}

// IsHEIC reports whether fileType is exactly the HEIC MIME type. HEIF content
// under any other label is still decoded, just not split into two stages.
func IsHEIC(fileType string) bool {
	return fileType == constants.MimeHEIC
}

func IsImageFile(filename string) bool {
	return strings.HasPrefix(GetMimeTypeFromExtension(filename), "image/")
}
