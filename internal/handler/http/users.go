package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GeorgesCH/SSDTeamProject/internal/app"
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/service"
	"github.com/GeorgesCH/SSDTeamProject/internal/utils"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

// allUsersSelector is the reserved email query value that requests a listing
// of every registered account instead of a single lookup.
const allUsersSelector = "all"

// getUsers serves GET /api/user. The required "email" query parameter either
// names one account or carries the reserved value "all".
func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, app.MsgEmailParamRequiredAllUsers, http.StatusBadRequest)
		return
	}

	if email == allUsersSelector {
		users, err := h.services.UserService.ListUsers(ctx, actor)
		if err != nil {
			log.Err(err).Msg("error listing users")
			writeError(w, err)
			return
		}

		utils.WriteJSON(w, users, http.StatusOK)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, actor, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("error getting user")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// createUser serves PUT /api/user: admin registration of a new account.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input service.NewUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(ctx, actor, input)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("error creating user")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateUser serves PATCH /api/user. The "email" query parameter names the
// target account; the body carries the fields to change.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, app.MsgEmailParamRequired, http.StatusBadRequest)
		return
	}

	var input service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateUser(ctx, actor, email, input)
	if err != nil {
		log.Err(err).Str("email", email).Msg("error updating user")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteUser serves DELETE /api/user. Self-deletion is allowed for anyone;
// deleting another account requires Admin.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, app.MsgEmailParamRequired, http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, actor, email); err != nil {
		log.Err(err).Str("email", email).Msg("error deleting user")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": fmt.Sprintf(app.MsgUserDeletedFormat, email)}, http.StatusOK)
}

// listAstronauts serves GET /api/user/astronauts.
func (h *Handler) listAstronauts(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, models.RoleAstronaut)
}

// listMedics serves GET /api/user/medics.
func (h *Handler) listMedics(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, models.RoleMedic)
}

func (h *Handler) listByRole(w http.ResponseWriter, r *http.Request, role models.Role) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var (
		users []models.User
		err   error
	)
	switch role {
	case models.RoleAstronaut:
		users, err = h.services.UserService.ListAstronauts(ctx, actor)
	default:
		users, err = h.services.UserService.ListMedics(ctx, actor)
	}
	if err != nil {
		log.Err(err).Str("role", role.String()).Msg("error listing users by role")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
