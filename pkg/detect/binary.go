// Package detect classifies file content as binary or text.
package detect

import "bytes"

// sniffLen caps how much of the buffer is examined. 8 KiB is enough for the
// NUL heuristic without paying for large files.
const sniffLen = 8192

// LooksBinary reports whether data appears to be binary. It scans at most
// the first 8192 bytes for a NUL byte. This is a heuristic: text with
// embedded NUL is misclassified as binary, and binary formats that avoid
// NUL early on pass as text.
func LooksBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0x00) >= 0
}
