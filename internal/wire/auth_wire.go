package wire

import (
	"ride-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/logout", authHandler.Logout)
}
