package usecases

import "errors"

// NoResultsMessage is sent when a search matches no groups.
const NoResultsMessage = "No matching groups were found."

// Errors returned while waiting for navigation input.
var (
	// ErrInputTimeout is returned when no qualifying reaction arrives within the wait window.
	ErrInputTimeout = errors.New("timed out waiting for navigation input")

	// ErrInputClosed is returned when the reaction subscription closes while waiting.
	ErrInputClosed = errors.New("reaction subscription closed")
)
