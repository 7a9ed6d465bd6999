package arr

import "errors"

var (
	// ErrUnavailable indicates the library manager could not be reached.
	ErrUnavailable = errors.New("library manager unavailable")

	// ErrInvalidAPIKey indicates the API key was rejected.
	ErrInvalidAPIKey = errors.New("invalid api key")
)
