package http

import "errors"

// Sentinel errors raised while parsing the Authorization header. All three
// map to 401; the distinction only matters for the response body and logs.
var (
	// ErrEmptyAuthorizationHeader: the header is absent.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header cannot be split into a
	// scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme is present but the token value is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
