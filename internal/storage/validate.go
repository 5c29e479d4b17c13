package storage

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

const MaxFileSize = 10 << 20 // 10 MiB

var (
	ErrFileTooLarge     = errors.New("file exceeds the maximum allowed size")
	ErrExtensionBlocked = errors.New("file extension is not allowed")
	ErrMimeMismatch     = errors.New("file content does not match its extension")
	ErrUnsafeContent    = errors.New("file content looks malicious")
)

var allowedExtensions = map[string][]string{
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".png":  {"image/png"},
	".gif":  {"image/gif"},
	".webp": {"image/webp"},
	".svg":  {"image/svg+xml", "text/xml", "text/plain"},
	".pdf":  {"application/pdf"},
	".ico":  {"image/x-icon", "image/vnd.microsoft.icon"},
}

// suspiciousPatterns are byte sequences that have no business appearing in
// uploaded media. Presence of any of them rejects the file.
var suspiciousPatterns = [][]byte{
	[]byte("<script"),
	[]byte("javascript:"),
	[]byte("vbscript:"),
	[]byte("onload="),
	[]byte("onerror="),
	[]byte("<?php"),
	[]byte("<%"),
	[]byte("#!/"),
}

// Validate checks size, extension, sniffed MIME type and content safety.
// Returns the sniffed MIME type on success.
func Validate(filename string, content []byte) (string, error) {
	if int64(len(content)) > MaxFileSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowedMimes, ok := allowedExtensions[ext]
	if !ok {
		return "", ErrExtensionBlocked
	}

	mimeType := sniffMime(content, ext)
	matched := false
	for _, m := range allowedMimes {
		if mimeType == m {
			matched = true
			break
		}
	}
	if !matched {
		return "", ErrMimeMismatch
	}

	if !isFileSafe(content) {
		return "", ErrUnsafeContent
	}

	return mimeType, nil
}

func sniffMime(content []byte, ext string) string {
	detected := http.DetectContentType(content)
	// DetectContentType has no signature for svg or pdf-in-text edge cases,
	// strip the charset suffix it appends to text types
	if i := strings.Index(detected, ";"); i >= 0 {
		detected = detected[:i]
	}
	if detected == "text/plain" && ext == ".svg" && bytes.Contains(content, []byte("<svg")) {
		return "image/svg+xml"
	}
	return detected
}

// isFileSafe scans the head of the file for embedded script or server-side
// code markers. SVG uploads are still plain XML so the scan applies to them
// in full.
func isFileSafe(content []byte) bool {
	head := content
	if len(head) > 64<<10 {
		head = head[:64<<10]
	}
	lower := bytes.ToLower(head)

	for _, pattern := range suspiciousPatterns {
		if bytes.Contains(lower, pattern) {
			return false
		}
	}

	return true
}
