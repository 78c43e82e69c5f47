package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexUnavailable indicates a search was requested against a
	// domain whose index was never built (zero source documents).
	// Other domains keep serving normally.
	ErrIndexUnavailable = errors.New("index unavailable")

	// ErrUnknownDomain indicates an unrecognised domain name.
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrUnknownStack indicates an unrecognised framework stack name.
	ErrUnknownStack = errors.New("unknown stack")

	// ErrUnknownPlatform indicates an unrecognised platform name.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrEmptyCatalog indicates the snippet source yielded no records
	// at all. The process refuses to start serving in this state.
	ErrEmptyCatalog = errors.New("empty snippet catalog")
)
