// Package news provides use cases for managing financial news entries.
// It implements business logic for creating, updating, deleting, and querying
// news, including validation and duplicate URL detection.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrNewsNotFound indicates that the requested news entry was not found.
	ErrNewsNotFound = errors.New("news not found")

	// ErrInvalidNewsID indicates that the provided news ID is invalid.
	// News IDs must be non-nil UUIDs.
	ErrInvalidNewsID = errors.New("invalid news ID")

	// ErrDuplicateURL indicates that a news entry with the same URL already
	// exists. URLs are unique across the collection.
	ErrDuplicateURL = errors.New("news with this URL already exists")
)
