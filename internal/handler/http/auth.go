package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/service"
	"github.com/MKhiriev/go-money-keeper/internal/utils"
	"github.com/MKhiriev/go-money-keeper/models"
)

// issueToken exchanges an identity asserted by the OAuth provider for a
// signed bearer token. The token is returned both in the Authorization
// response header and in the JSON body.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var identity models.Identity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", nil, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, identity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			log.Err(err).Msg("no identity email provided")
			writeError(w, "no identity email provided", nil, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("creation of token failed")
			writeError(w, http.StatusText(http.StatusInternalServerError), err, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("email", identity.Email).Msg("identity token issued")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, token, http.StatusOK)
}
