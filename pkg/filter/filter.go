// Package filter decides which repository paths make it into the flattened
// document. The decision is a short-circuiting pipeline of pure checks:
// image files are always dropped, then the include list (when present) must
// claim the path, then any exclude match removes it.
package filter

import (
	"strings"

	"gitflat/pkg/glob"
)

// imageExtensions lists extensions that are never embedded, regardless of
// include patterns. Comparison is case-insensitive and without the dot.
var imageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"bmp":  {},
	"ico":  {},
	"webp": {},
	"tiff": {},
	"tif":  {},
	"avif": {},
	"heic": {},
	"heif": {},
	"svg":  {},
	"raw":  {},
	"cr2":  {},
	"nef":  {},
	"psd":  {},
	"eps":  {},
	"exr":  {},
}

// ShouldInclude reports whether the slash-normalized relative path survives
// filtering. An empty include list means no include filter; an exclude match
// wins over any include match.
func ShouldInclude(path string, include, exclude []string) bool {
	if IsImage(path) {
		return false
	}
	if len(include) > 0 && !matchesAny(include, path) {
		return false
	}
	if matchesAny(exclude, path) {
		return false
	}
	return true
}

// IsImage reports whether the path carries a recognized image extension.
func IsImage(path string) bool {
	dot := strings.LastIndexByte(path, '.')
	if dot < 0 || dot == len(path)-1 {
		return false
	}
	ext := strings.ToLower(path[dot+1:])
	if strings.ContainsRune(ext, '/') {
		return false
	}
	_, ok := imageExtensions[ext]
	return ok
}

func matchesAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if glob.Match(p, path) {
			return true
		}
	}
	return false
}
