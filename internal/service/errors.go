package service

import "errors"

var (
	// ErrInvalidDataProvided marks requests rejected before any repository
	// or crypto work: empty required fields, unknown roles, unknown record
	// kinds.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every login failure: unknown email and
	// wrong password collapse into one error so callers cannot probe which
	// accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrRecipientNotFound is returned when a message is addressed to an
	// email no account is registered under.
	ErrRecipientNotFound = errors.New("message recipient not found")
)
