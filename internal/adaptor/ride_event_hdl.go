package adaptor

import (
	"net/http"

	"ride-api/internal/dto/request"
	"ride-api/internal/dto/response"
	"ride-api/internal/usecase"
	"ride-api/pkg/utils"

	"go.uber.org/zap"
)

type RideEventHandler struct {
	service usecase.RideEventService
	log     *zap.Logger
}

func NewRideEventHandler(service usecase.RideEventService, log *zap.Logger) *RideEventHandler {
	return &RideEventHandler{
		service: service,
		log:     log.With(zap.String("handler", "ride_event")),
	}
}

// List handles GET /rideevents/
func (h *RideEventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list ride events")
		return
	}

	utils.ResponseSuccess(w, "Ride events retrieved", response.RideEventsToResponse(utils.BaseURL(r), events))
}

// Get handles GET /rideevents/{id}/
func (h *RideEventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	event, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get ride event")
		return
	}

	utils.ResponseSuccess(w, "Ride event retrieved", response.RideEventToResponse(utils.BaseURL(r), event))
}

// Create handles POST /rideevents/
func (h *RideEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.RideEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ride event")
		return
	}

	utils.ResponseCreated(w, "Ride event created", response.RideEventToResponse(utils.BaseURL(r), event))
}

// Replace handles PUT /rideevents/{id}/
func (h *RideEventHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.RideEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := h.service.Replace(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "replace ride event")
		return
	}

	utils.ResponseSuccess(w, "Ride event updated", response.RideEventToResponse(utils.BaseURL(r), event))
}

// Patch handles PATCH /rideevents/{id}/
func (h *RideEventHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.RideEventPatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := h.service.Patch(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "patch ride event")
		return
	}

	utils.ResponseSuccess(w, "Ride event updated", response.RideEventToResponse(utils.BaseURL(r), event))
}

// Delete handles DELETE /rideevents/{id}/
func (h *RideEventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete ride event")
		return
	}

	utils.ResponseNoContent(w)
}
