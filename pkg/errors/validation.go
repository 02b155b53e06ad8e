package errors

import (
	"net/url"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// ValidateRGB checks that a color has exactly three components in [0, 255].
func ValidateRGB(rgb []int) error {
	if len(rgb) != 3 {
		return New(ErrCodeInvalidInput, "color must have 3 components, got %d", len(rgb))
	}
	for i, c := range rgb {
		if c < 0 || c > 255 {
			return New(ErrCodeInvalidInput, "color component %d out of range [0,255]: %d", i, c)
		}
	}
	return nil
}

// ValidateScale checks a render scale. Zero means "not set" and is always
// accepted. A set scale must lie in [1, 3] and requires a width or height.
func ValidateScale(scale float64, width, height int) error {
	if scale == 0 {
		return nil
	}
	if scale < 1 || scale > 3 {
		return New(ErrCodeInvalidInput, "scale must be between 1 and 3, got %v", scale)
	}
	if width <= 0 && height <= 0 {
		return New(ErrCodeInvalidInput, "scale requires a width or a height")
	}
	return nil
}

// ValidateExtension checks that path ends in one of the allowed extensions.
// The comparison is case-sensitive, matching how the files are written.
func ValidateExtension(path string, allowed []string) error {
	ext := filepath.Ext(path)
	if slices.Contains(allowed, ext) {
		return nil
	}
	return New(ErrCodeInvalidExtension, "file extension must be one of %s, got %q",
		strings.Join(allowed, ", "), ext)
}

// ValidateServerURL validates a render server base URL.
// It must be absolute, use http or https and carry no query or fragment.
func ValidateServerURL(raw string) error {
	if raw == "" {
		return New(ErrCodeInvalidConfig, "server URL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Wrap(ErrCodeInvalidConfig, err, "invalid server URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidConfig, "server URL must use http or https scheme")
	}
	if u.Host == "" {
		return New(ErrCodeInvalidConfig, "server URL has no host")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return New(ErrCodeInvalidConfig, "server URL cannot have a query or fragment")
	}
	return nil
}

// ValidateTitle rejects titles that would break the front matter block
// or could not be used as a default file name.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return New(ErrCodeInvalidInput, "title cannot be empty")
	}
	if len(title) > 256 {
		return New(ErrCodeInvalidInput, "title too long (max 256 characters)")
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains control characters")
		}
	}
	if strings.ContainsAny(title, "/\\") || strings.Contains(title, "..") {
		return New(ErrCodeInvalidInput, "title cannot contain path separators")
	}
	return nil
}
