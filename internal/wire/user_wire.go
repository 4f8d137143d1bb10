package wire

import (
	"ride-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get("/{id}", userHandler.Get)
		r.Put("/{id}", userHandler.Replace)
		r.Patch("/{id}", userHandler.Patch)
		r.Delete("/{id}", userHandler.Delete)
	})
}
