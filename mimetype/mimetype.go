package mimetype

import (
	"path/filepath"
	"strings"
)

// IsCompressed guesses from the file name whether path holds archived or
// compressed data. Chunks found in such a file are offsets into the
// compressed bytes, not into the content they unpack to.
func IsCompressed(path string) (string, bool) {
	filename := strings.ToLower(filepath.Base(path))

	switch {
	case strings.HasSuffix(filename, ".tar"):
		return "application/x-tar", true
	case strings.HasSuffix(filename, ".tar.gz"),
		strings.HasSuffix(filename, ".tgz"),
		strings.HasSuffix(filename, ".gz"):
		return "application/gzip", true
	case strings.HasSuffix(filename, ".zip"),
		strings.HasSuffix(filename, ".jar"):
		return "application/zip", true
	case strings.HasSuffix(filename, ".bz2"):
		return "application/x-bzip2", true
	case strings.HasSuffix(filename, ".xz"):
		return "application/x-xz", true
	case strings.HasSuffix(filename, ".zst"):
		return "application/zstd", true
	default:
		return "", false
	}
}
