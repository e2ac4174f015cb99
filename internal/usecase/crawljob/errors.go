// Package crawljob coordinates crawl requests between the HTTP admin
// surface, the job store, and the message queue feeding the external
// crawler.
package crawljob

import "errors"

// Sentinel errors for crawl job use case operations.
var (
	// ErrJobNotFound indicates that the requested crawl job was not found.
	ErrJobNotFound = errors.New("crawl job not found")

	// ErrInvalidJobID indicates that the provided job ID is invalid.
	ErrInvalidJobID = errors.New("invalid crawl job ID")

	// ErrJobAlreadyRunning indicates that a crawl job is already pending or
	// running. Only one crawl may be in flight at a time.
	ErrJobAlreadyRunning = errors.New("a crawl job is already in progress")

	// ErrInvalidStatus indicates an unknown status value in a filter.
	ErrInvalidStatus = errors.New("invalid crawl job status")
)
