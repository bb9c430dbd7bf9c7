package serde

import "github.com/cockroachdb/errors"

// Leaf errors of the package. Callers match them with errors.Is; all wrapping
// inside the package preserves these marks.
var (
	// ErrUnsupportedType is returned when a value has no plain-JSON shape and
	// satisfies no tagging rule (e.g. a func or channel).
	ErrUnsupportedType = errors.New("type is not serializable")

	// ErrInvalidJSON is returned when input text is not syntactically valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
)
