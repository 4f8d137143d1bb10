package adaptor

import (
	"net/http"

	"ride-api/internal/dto/request"
	"ride-api/internal/dto/response"
	"ride-api/internal/usecase"
	"ride-api/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// List handles GET /users/
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", response.UsersToResponse(utils.BaseURL(r), users))
}

// Get handles GET /users/{id}/
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved", response.UserToResponse(utils.BaseURL(r), user))
}

// Create handles POST /users/
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created", response.UserToResponse(utils.BaseURL(r), user))
}

// Replace handles PUT /users/{id}/
func (h *UserHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.Replace(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "replace user")
		return
	}

	utils.ResponseSuccess(w, "User updated", response.UserToResponse(utils.BaseURL(r), user))
}

// Patch handles PATCH /users/{id}/
func (h *UserHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.UserPatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.Patch(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "patch user")
		return
	}

	utils.ResponseSuccess(w, "User updated", response.UserToResponse(utils.BaseURL(r), user))
}

// Delete handles DELETE /users/{id}/
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseNoContent(w)
}
