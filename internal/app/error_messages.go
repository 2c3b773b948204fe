// Package app contains shared application-layer constants used across the
// server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgLoginError is returned when the supplied email/password combination
	// does not match any existing account. The wording deliberately does not
	// reveal which of the two was wrong.
	MsgLoginError = "Login error. Check username and password."

	// MsgEmailParamRequired is returned when a request that targets a single
	// account omits the email query parameter.
	MsgEmailParamRequired = "email query parameter is required"

	// MsgEmailParamRequiredAllUsers is returned by the user listing endpoint
	// when the email query parameter is missing; "all" selects every account.
	MsgEmailParamRequiredAllUsers = "email query parameter is required, 'all' for all users"

	// MsgEmailParamRequiredAllPosts is returned by the message listing
	// endpoint when the email query parameter is missing; "all" selects
	// every conversation the caller takes part in.
	MsgEmailParamRequiredAllPosts = "email query parameter is required, 'all' for all conversations"

	// MsgUserDeletedFormat is the confirmation body for a successful account
	// deletion; the single format verb is the target's email.
	MsgUserDeletedFormat = "User %s deleted"
)

// Fixed response bodies for mapped error statuses. Internal error chains are
// logged server-side only; clients see one constant message per class.
const (
	// MsgInvalidDataProvided is the 400 body for requests that fail
	// validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgTokenIsExpiredOrInvalid is the 401 body for requests whose bearer
	// token cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is the 403 body. It covers role denials and ciphertext
	// authentication failures alike, so the caller cannot tell them apart.
	MsgAccessDenied = "access denied"

	// MsgNotFound is the 404 body for lookups of accounts that do not exist.
	MsgNotFound = "requested resource not found"

	// MsgEmailAlreadyExists is the 409 body for a duplicate registration.
	MsgEmailAlreadyExists = "email already exists"

	// MsgInternalServerError is the 500 body for unexpected server-side
	// failures.
	MsgInternalServerError = "internal server error"
)
