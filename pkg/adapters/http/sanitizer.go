package http

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxPathSize is 1KB, far above any realistic command depth.
	DefaultMaxPathSize = 1024
	// EnvMaxPathSize is the environment variable to override the default
	EnvMaxPathSize = "CMDFORM_MAX_PATH_SIZE"
)

var (
	ErrPathTooLarge = errors.New("path exceeds maximum allowed size")
	ErrInvalidUTF8  = errors.New("path contains invalid UTF-8 sequences")
	ErrControlChars = errors.New("path contains control characters")
)

// SanitizePath enforces the size limit, validates UTF-8 and rejects control
// characters in a command path taken from a request.
// Paths are rejected rather than cleaned so that lookups stay exact.
func SanitizePath(path string) (string, error) {
	limit := getMaxPathSize()
	if len(path) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrPathTooLarge, len(path), limit)
	}

	if !utf8.ValidString(path) {
		return "", ErrInvalidUTF8
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return "", ErrControlChars
		}
	}
	return path, nil
}

func getMaxPathSize() int {
	if val := os.Getenv(EnvMaxPathSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxPathSize
}
