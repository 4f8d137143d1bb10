package adaptor

import (
	"net/http"

	"ride-api/internal/dto/request"
	"ride-api/internal/dto/response"
	"ride-api/internal/usecase"
	"ride-api/pkg/utils"

	"go.uber.org/zap"
)

type RideHandler struct {
	service    usecase.RideService
	pagination utils.PaginationConfig
	log        *zap.Logger
}

func NewRideHandler(service usecase.RideService, pagination utils.PaginationConfig, log *zap.Logger) *RideHandler {
	return &RideHandler{
		service:    service,
		pagination: pagination,
		log:        log.With(zap.String("handler", "ride")),
	}
}

// List handles GET /rides/
// Query: status, id_rider__email, latitude, longitude, order, page, page_size
func (h *RideHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := request.NewRideFilter(r.URL.Query(), h.pagination.PageSize, h.pagination.MaxPageSize)

	rides, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list rides")
		return
	}

	page := response.NewPageResponse(
		response.RidesToResponse(utils.BaseURL(r), rides),
		filter.Page,
		filter.PageSize,
		total,
		func(page int) string { return utils.PageURL(r, page) },
	)

	utils.ResponseSuccess(w, "Rides retrieved", page)
}

// Get handles GET /rides/{id}/ and honours latitude/longitude like List.
func (h *RideHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	ride, err := h.service.Get(r.Context(), id, query.Get("latitude"), query.Get("longitude"))
	if err != nil {
		handleServiceError(w, h.log, err, "get ride")
		return
	}

	utils.ResponseSuccess(w, "Ride retrieved", response.RideToResponse(utils.BaseURL(r), ride))
}

// Create handles POST /rides/
func (h *RideHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.RideRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ride, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ride")
		return
	}

	utils.ResponseCreated(w, "Ride created", response.RideToResponse(utils.BaseURL(r), ride))
}

// Replace handles PUT /rides/{id}/
func (h *RideHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.RideRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ride, err := h.service.Replace(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "replace ride")
		return
	}

	utils.ResponseSuccess(w, "Ride updated", response.RideToResponse(utils.BaseURL(r), ride))
}

// Patch handles PATCH /rides/{id}/
func (h *RideHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.RidePatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ride, err := h.service.Patch(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "patch ride")
		return
	}

	utils.ResponseSuccess(w, "Ride updated", response.RideToResponse(utils.BaseURL(r), ride))
}

// Delete handles DELETE /rides/{id}/
func (h *RideHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete ride")
		return
	}

	utils.ResponseNoContent(w)
}
