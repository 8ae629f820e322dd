package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/version", h.getServerVersion)

	// pairing is reachable before a device has a session
	router.Group(func(r chi.Router) {
		r.Use(h.withPairRateLimit)
		r.Post("/pair", h.registerCode)
		r.With(h.optionalAuth).Post("/pair/claim", h.claimCode)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/pair/status", h.pairStatus)
		r.With(withGZip).Get("/notes", h.getNotes)
		r.Put("/notes", h.replaceNotes)
		r.Put("/notes/{id}", h.putNote)
		r.Delete("/notes/{id}", h.deleteNote)
		r.Delete("/session", h.revokeSession)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
