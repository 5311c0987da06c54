package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Handle("/metrics", promhttp.Handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/options", h.listOptions)

		r.Get("/api/config", h.listGlobals)
		r.Put("/api/config", h.setGlobal)
		r.Get("/api/config/{option}", h.getGlobal)

		r.Get("/api/clients", h.listClients)
		r.Post("/api/clients", h.createClient)
		r.Get("/api/clients/{id}", h.getClient)
		r.Delete("/api/clients/{id}", h.deleteClient)
		r.Get("/api/clients/{id}/config", h.getClientConfig)
		r.Put("/api/clients/{id}/config", h.setClientConfig)
		r.Get("/api/clients/{id}/config/view", h.viewClientConfig)
		r.Get("/api/clients/{id}/config/{option}", h.getClientOption)
		r.Get("/api/clients/{id}/groups", h.getMemberships)
		r.Put("/api/clients/{id}/groups", h.setMemberships)

		r.Get("/api/groups", h.listGroups)
		r.Post("/api/groups", h.createGroup)
		r.Get("/api/groups/{id}", h.getGroup)
		r.Delete("/api/groups/{id}", h.deleteGroup)
		r.Get("/api/groups/{id}/config", h.getGroupConfig)
		r.Put("/api/groups/{id}/config", h.setGroupConfig)
		r.Get("/api/groups/{id}/config/{option}", h.getGroupOption)

		r.Post("/api/reports/effective", h.effectiveReport)

		r.Get("/api/operators", h.listOperators)
		r.Post("/api/operators", h.createOperator)
		r.Delete("/api/operators/{login}", h.deleteOperator)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
