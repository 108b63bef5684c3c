package resumes

import "errors"

var (
	// ErrNotFound indicates no resume exists for the requested identifier.
	ErrNotFound = errors.New("not found")

	// ErrMissingRequired indicates a required field was empty.
	ErrMissingRequired = errors.New("name, email, and phone are required")
)
