package crypto

import "errors"

var (
	// ErrAuthFailure is returned by Open (and the batch helpers built on it)
	// when a token cannot be authenticated: wrong key, tampered bytes, or a
	// structurally invalid token. No further detail is exposed so that the
	// caller-visible outcome is always a plain access-denied.
	ErrAuthFailure = errors.New("ciphertext authentication failed")

	// ErrInvalidKey is returned when stored key material cannot be decoded.
	// This indicates corrupted or misconfigured key storage, never a bad
	// caller credential.
	ErrInvalidKey = errors.New("invalid encryption key material")
)
