package model

import "errors"

var (
	// Validation errors, surfaced before any remote call is made.
	ErrDocumentRequired       = errors.New("cv document is required")
	ErrJobDescriptionRequired = errors.New("job description is required")

	// ErrExtractionFailed means both extraction strategies failed. The
	// accompanying text (possibly empty) is still usable.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrMalformedResponse means the model returned something that is not
	// valid JSON for a structured mode.
	ErrMalformedResponse = errors.New("model returned a malformed response")

	ErrNoResult = errors.New("no analysis result for this session")

	ErrExportFailed = errors.New("no document produced")

	ErrSessionNotFound = errors.New("session not found")
)
