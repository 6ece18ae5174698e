package offlinedocs

import "errors"

// Sentinel errors for library operations.
var (
	// ErrManifestLoad indicates the manifest is absent, malformed, or has no docs key.
	ErrManifestLoad = errors.New("failed to load manifest")

	// ErrOutputWrite indicates the generated page could not be written.
	ErrOutputWrite = errors.New("failed to write output")

	// ErrNilTemplate indicates an assembler was built without a page template.
	ErrNilTemplate = errors.New("page template is required")

	// ErrInvalidWorkers indicates a worker count outside the accepted range.
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// Per-document resolution errors. These never escape Resolve; they are
// logged alongside the placeholder fragment.
var (
	ErrContentNotFound = errors.New("content not found")
	ErrContentLoad     = errors.New("content load failed")
)
