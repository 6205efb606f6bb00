package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/device/register", h.registerDevice)
		r.Post("/api/device/login", h.loginDevice)
	})

	// routes requiring a device session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/account/status", h.accountStatus)
		r.Post("/api/sync/exchange", h.exchange)
		r.Post("/api/sync/subscribe", h.subscribe)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
