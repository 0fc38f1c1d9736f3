package recording

import "errors"

// Sentinel errors for recording package.
var (
	// ErrInvalidViewport is returned when a viewport has no pixels or an
	// empty data range.
	ErrInvalidViewport = errors.New("recording: invalid viewport")

	// ErrUnknownBackend is returned by NewBackend for unregistered names.
	ErrUnknownBackend = errors.New("recording: unknown backend")
)
