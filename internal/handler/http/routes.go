package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestScope)
	router.Use(h.withLogging)

	router.Get("/", h.home)

	// login form and credential check
	router.Get("/detail", h.detail)
	router.Post("/detail", h.login)

	router.Post("/predict", h.predict)
	router.Get("/visualization", h.visualization)

	router.Get("/register", h.registerForm)
	router.Post("/register-redirect", h.register)

	return router
}
