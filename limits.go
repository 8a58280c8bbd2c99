package tablepager

import (
	"strconv"
	"strings"
)

const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 500

	// MaxVisiblePages is the number of page buttons shown without compression.
	MaxVisiblePages = 7
)

// NormalizePageSize clamps a page size used by a Pager to MinPageSize.
func NormalizePageSize(pageSize int) int {
	if pageSize < MinPageSize {
		return MinPageSize
	}

	return pageSize
}

// IsNormalizedPageSizeMax normalizes a page size that came from a request
// payload. Non-positive sizes fall back to DefaultPageSize, sizes above
// maxPageSize are clamped. The flag reports whether the value was kept as-is.
func IsNormalizedPageSizeMax(pageSize int, maxPageSize int) (int, bool) {
	if pageSize <= 0 {
		return min(DefaultPageSize, maxPageSize), false
	} else if pageSize > maxPageSize {
		return maxPageSize, false
	}

	return pageSize, true
}

// NormalizePageSizeMax is IsNormalizedPageSizeMax without the flag.
func NormalizePageSizeMax(pageSize int, maxPageSize int) int {
	ret, _ := IsNormalizedPageSizeMax(pageSize, maxPageSize)
	return ret
}

// ParsePageSize reads a page size from a markup attribute. Like the browser's
// parseInt it uses the leading integer and ignores the rest, so "25px" and
// "10.5" yield 25 and 10. A missing or non-positive number yields
// DefaultPageSize.
func ParsePageSize(raw string) int {
	raw = strings.TrimSpace(raw)

	digits := 0
	if strings.HasPrefix(raw, "+") || strings.HasPrefix(raw, "-") {
		digits = 1
	}
	for digits < len(raw) && raw[digits] >= '0' && raw[digits] <= '9' {
		digits++
	}

	pageSize, err := strconv.Atoi(raw[:digits])
	if err != nil || pageSize <= 0 {
		return DefaultPageSize
	}

	return pageSize
}
