package wire

import (
	"ride-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRideEvent(r chi.Router, rideEventHandler *adaptor.RideEventHandler) {
	r.Route("/rideevents", func(r chi.Router) {
		r.Get("/", rideEventHandler.List)
		r.Post("/", rideEventHandler.Create)
		r.Get("/{id}", rideEventHandler.Get)
		r.Put("/{id}", rideEventHandler.Replace)
		r.Patch("/{id}", rideEventHandler.Patch)
		r.Delete("/{id}", rideEventHandler.Delete)
	})
}
