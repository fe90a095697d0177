package field

import "errors"

// Error kinds. All of them are raised synchronously and abort the current call;
// callers match them with errors.Is.
var (
	// ErrDecoding reports a malformed encoded name.
	ErrDecoding = errors.New("decoding error")
	// ErrConfiguration reports metadata that lacks a required type name.
	ErrConfiguration = errors.New("configuration error")
	// ErrTypeMismatch reports a spec-role coercion applied to a value of the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")
)
