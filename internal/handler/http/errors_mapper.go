package http

import (
	"errors"
	"net/http"

	"github.com/GeorgesCH/SSDTeamProject/internal/app"
	"github.com/GeorgesCH/SSDTeamProject/internal/crypto"
	"github.com/GeorgesCH/SSDTeamProject/internal/policy"
	"github.com/GeorgesCH/SSDTeamProject/internal/service"
	"github.com/GeorgesCH/SSDTeamProject/internal/store"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	models.ErrUnknownRole:          http.StatusBadRequest,
	models.ErrUnknownRecordKind:    http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	policy.ErrRoleDenied: http.StatusForbidden,

	// A ciphertext that fails authentication means the caller's key does not
	// match the stored data. Surfaced as access denied, never as a detailed
	// crypto error.
	crypto.ErrAuthFailure: http.StatusForbidden,

	store.ErrUserNotFound:        http.StatusNotFound,
	service.ErrRecipientNotFound: http.StatusNotFound,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrInvalidRoleValue:   http.StatusBadRequest,
	store.ErrNothingToUpdate:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusMessages gives the fixed response body for every mapped status.
// Error chains carry repository and crypto detail that must never reach the
// client; the full chain goes to the log at the call site instead.
var statusMessages = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusUnauthorized:        app.MsgTokenIsExpiredOrInvalid,
	http.StatusForbidden:           app.MsgAccessDenied,
	http.StatusNotFound:            app.MsgNotFound,
	http.StatusConflict:            app.MsgEmailAlreadyExists,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError translates a service error into its HTTP status and the fixed
// body for that status.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	msg, ok := statusMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}

	http.Error(w, msg, status)
}
