package fileserver

import (
	"net/http"
	"path"
	"strings"
)

// setStaticCache sets Cache-Control for files under .static/. Fingerprinted
// names ("app.a1b2c3d4.css") never change and are cached for a year.
func setStaticCache(w http.ResponseWriter, rel string) {
	if isFingerprinted(rel) {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
}

// isFingerprinted reports whether the part of the base name before the
// extension is a hash of at least 8 hex digits.
func isFingerprinted(rel string) bool {
	parts := strings.Split(path.Base(rel), ".")
	if len(parts) < 3 {
		return false
	}
	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}
	for _, c := range hash {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
