package http

import (
	"encoding/json"
	"net/http"

	"github.com/GeorgesCH/SSDTeamProject/internal/app"
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/utils"
)

type sendMessageRequest struct {
	Email   string `json:"email"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// sendMessage serves PUT /api/post: sends a private message to the account
// named in the body's email field.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var body sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	entry, err := h.services.MessageService.SendMessage(ctx, actor, body.Email, body.Title, body.Content)
	if err != nil {
		log.Err(err).Str("recipient", body.Email).Msg("error sending message")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

// listMessages serves GET /api/post. The required "email" query parameter is
// either the reserved value "all" (every conversation the caller takes part
// in) or the email of one counterpart.
func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, app.MsgEmailParamRequiredAllPosts, http.StatusBadRequest)
		return
	}

	var (
		entries any
		err     error
	)
	if email == allUsersSelector {
		entries, err = h.services.MessageService.ListMessages(ctx, actor)
	} else {
		entries, err = h.services.MessageService.ListConversation(ctx, actor, email)
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("error listing messages")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
