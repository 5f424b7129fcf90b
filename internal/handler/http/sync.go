package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/utils"
	"github.com/MKhiriev/go-money-keeper/models"
)

func (h *Handler) fetchSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, found := utils.GetIdentityFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.fetchSync").Msg("no identity in request context")
		writeError(w, "not authenticated", nil, http.StatusUnauthorized)
		return
	}

	response, err := h.services.SyncService.Fetch(ctx, identity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchSync").Msg("error fetching sync state")
		writeError(w, "error fetching sync state", err, statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// pushSync handles POST /api/sync. The body is either a payload push
// ({"data": ...}) or a snapshot restore ({"rollbackTo": ...}); the two
// variants share the route but produce different response shapes.
func (h *Handler) pushSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, found := utils.GetIdentityFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pushSync").Msg("no identity in request context")
		writeError(w, "not authenticated", nil, http.StatusUnauthorized)
		return
	}

	var pushRequest models.SyncPushRequest
	if err := json.NewDecoder(r.Body).Decode(&pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pushSync").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", nil, http.StatusBadRequest)
		return
	}

	if pushRequest.IsRollback() {
		h.rollbackSync(w, r, identity, pushRequest.RollbackTo)
		return
	}

	if len(pushRequest.Data) == 0 {
		log.Error().Str("func", "*Handler.pushSync").Msg("no payload provided")
		writeError(w, "no payload provided", nil, http.StatusBadRequest)
		return
	}

	lastSync, err := h.services.SyncService.Push(ctx, identity, pushRequest.Data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pushSync").Msg("error pushing payload")
		writeError(w, "error pushing payload", err, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SyncPushResponse{Success: true, LastSync: lastSync}, http.StatusOK)
}

func (h *Handler) rollbackSync(w http.ResponseWriter, r *http.Request, identity models.Identity, rollbackTo string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	restored, lastSync, err := h.services.SyncService.Rollback(ctx, identity, rollbackTo)
	if err != nil {
		log.Err(err).Str("func", "*Handler.rollbackSync").Str("rollbackTo", rollbackTo).Msg("error restoring snapshot")
		writeError(w, "error restoring snapshot", err, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SyncRollbackResponse{Success: true, Data: restored, LastSync: lastSync}, http.StatusOK)
}
