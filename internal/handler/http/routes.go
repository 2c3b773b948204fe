package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Throttle(100))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/user", func(r chi.Router) {
			r.Get("/", h.getUsers)
			r.Put("/", h.createUser)
			r.Patch("/", h.updateUser)
			r.Delete("/", h.deleteUser)

			r.Get("/astronauts", h.listAstronauts)
			r.Get("/medics", h.listMedics)
		})

		r.Route("/api/record/{recordKind}", func(r chi.Router) {
			r.Get("/", h.listRecords)
			r.Put("/", h.submitRecord)
		})

		r.Route("/api/post", func(r chi.Router) {
			r.Get("/", h.listMessages)
			r.Put("/", h.sendMessage)
		})
	})

	return router
}
