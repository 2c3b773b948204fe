package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeorgesCH/SSDTeamProject/internal/app"
	"github.com/GeorgesCH/SSDTeamProject/internal/crypto"
	"github.com/GeorgesCH/SSDTeamProject/internal/policy"
	"github.com/GeorgesCH/SSDTeamProject/internal/service"
	"github.com/GeorgesCH/SSDTeamProject/internal/store"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"role denied", policy.ErrRoleDenied, http.StatusForbidden},
		{"crypto auth failure", crypto.ErrAuthFailure, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"recipient not found", service.ErrRecipientNotFound, http.StatusNotFound},
		{"duplicate email", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"query failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unmapped error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped role denied", fmt.Errorf("outer: %w", policy.ErrRoleDenied), http.StatusForbidden},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrUserNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestListRecords_DecryptionFailureBodyIsFixed(t *testing.T) {
	svcs := newTestServices()
	svcs.authenticatedAs(astroFixture)
	svcs.records.listFn = func(ctx context.Context, actor models.User, kind, ownerEmail string) ([]models.DecryptedRecord, error) {
		return nil, fmt.Errorf("record decryption failed: %w", crypto.ErrAuthFailure)
	}

	router := newTestHandler(t, svcs).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/record/blood_pressure", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgAccessDenied+"\n", rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "decryption")
	assert.NotContains(t, rec.Body.String(), "authentication")
}

func TestGetUsers_InternalErrorBodyIsFixed(t *testing.T) {
	svcs := newTestServices()
	svcs.authenticatedAs(adminFixture)
	svcs.users.listFn = func(ctx context.Context, actor models.User) ([]models.User, error) {
		return nil, fmt.Errorf("%w: dial tcp 127.0.0.1:5432: connection refused", store.ErrExecutingQuery)
	}

	router := newTestHandler(t, svcs).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/user?email=all", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError+"\n", rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestGetUsers_NotFoundBodyIsFixed(t *testing.T) {
	svcs := newTestServices()
	svcs.authenticatedAs(adminFixture)
	svcs.users.getFn = func(ctx context.Context, actor models.User, email string) (models.User, error) {
		return models.User{}, fmt.Errorf("user search by email failed: %w", store.ErrUserNotFound)
	}

	router := newTestHandler(t, svcs).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/user?email=ghost@email.com", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNotFound+"\n", rec.Body.String())
}
