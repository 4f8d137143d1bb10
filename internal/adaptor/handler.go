package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"ride-api/internal/usecase"
	"ride-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Ride      *RideHandler
	RideEvent *RideEventHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Ride:      NewRideHandler(service.Ride, config.Pagination, log),
		RideEvent: NewRideEventHandler(service.RideEvent, log),
	}
}

// decodeBody reads a JSON body into dst. Type mismatches are reported per
// field; anything else unparseable is a plain bad request.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{typeErr.Field: "Incorrect type."})
		return false
	}

	utils.ResponseBadRequest(w, "Invalid request body", nil)
	return false
}

// pathID parses the {id} URL param; a malformed id is a missing resource.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w, "Not found.")
		return 0, false
	}
	return id, true
}

func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "Invalid username or password")
	case errors.Is(err, usecase.ErrInvalidPage):
		utils.ResponseNotFound(w, "Invalid page.")
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, "Not found.")
	default:
		log.Error("Service error", zap.String("op", op), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
