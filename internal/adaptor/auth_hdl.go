package adaptor

import (
	"net/http"

	"ride-api/internal/dto/request"
	"ride-api/internal/usecase"
	"ride-api/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req, r.UserAgent(), r.RemoteAddr)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}
