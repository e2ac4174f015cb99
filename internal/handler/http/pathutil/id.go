// Package pathutil provides helpers for extracting parameters from URL
// paths and normalizing paths for metrics labels.
package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractUUID extracts and parses a UUID from a URL path.
// It removes the given prefix and an optional suffix, then parses the
// remaining segment.
//
// Example:
//
//	id, err := ExtractUUID("/news/9f1b.../view", "/news/", "/view")
func ExtractUUID(path, prefix, suffix string) (uuid.UUID, error) {
	segment := strings.TrimPrefix(path, prefix)
	if suffix != "" {
		segment = strings.TrimSuffix(segment, suffix)
	}
	id, err := uuid.Parse(segment)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

// ExtractSegment extracts a raw path segment after the given prefix.
// Returns ErrInvalidID when the segment is empty or spans further slashes.
func ExtractSegment(path, prefix string) (string, error) {
	segment := strings.TrimPrefix(path, prefix)
	if segment == "" || strings.Contains(segment, "/") {
		return "", ErrInvalidID
	}
	return segment, nil
}
