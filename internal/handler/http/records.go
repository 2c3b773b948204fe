package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GeorgesCH/SSDTeamProject/internal/app"
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/internal/utils"
)

type submitRecordRequest struct {
	Record string `json:"record"`
}

// submitRecord serves PUT /api/record/{recordKind}: an astronaut submits one
// metric reading for itself.
func (h *Handler) submitRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var body submitRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	kind := chi.URLParam(r, "recordKind")
	entry, err := h.services.RecordService.SubmitRecord(ctx, actor, kind, body.Record)
	if err != nil {
		log.Err(err).Str("kind", kind).Msg("error submitting record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

// listRecords serves GET /api/record/{recordKind}. The optional "email"
// query parameter selects whose records to view; empty means the caller's
// own.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	kind := chi.URLParam(r, "recordKind")
	ownerEmail := r.URL.Query().Get("email")

	entries, err := h.services.RecordService.ListRecords(ctx, actor, kind, ownerEmail)
	if err != nil {
		log.Err(err).Str("kind", kind).Str("email", ownerEmail).Msg("error listing records")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
