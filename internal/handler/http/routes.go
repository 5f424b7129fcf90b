package http

import (
	"net/http"

	"github.com/MKhiriev/go-money-keeper/internal/utils"
	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/token", h.issueToken)
		r.Get("/api/version", h.getServerVersion)
	})

	// sync routes require a verified identity token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/sync", h.fetchSync)
		r.Post("/api/sync", h.pushSync)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// writeError sends the uniform {error, message} body. detail is included
// as the diagnostic message when non-nil.
func writeError(w http.ResponseWriter, errText string, detail error, statusCode int) {
	response := models.ErrorResponse{Error: errText}
	if detail != nil {
		response.Message = detail.Error()
	}
	utils.WriteJSON(w, response, statusCode)
}
