package ingest

import (
	"net/http"
	"path/filepath"
	"strings"
)

// DetectContentType prefers the file extension and falls back to sniffing the
// payload, so a .png with a stray extension still resolves sensibly.
func DetectContentType(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}
	return http.DetectContentType(data)
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
