package wire

import (
	"ride-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRide(r chi.Router, rideHandler *adaptor.RideHandler) {
	r.Route("/rides", func(r chi.Router) {
		// ?status=&id_rider__email=&latitude=&longitude=&order=&page=&page_size=
		r.Get("/", rideHandler.List)
		r.Post("/", rideHandler.Create)
		// ?latitude=&longitude=
		r.Get("/{id}", rideHandler.Get)
		r.Put("/{id}", rideHandler.Replace)
		r.Patch("/{id}", rideHandler.Patch)
		r.Delete("/{id}", rideHandler.Delete)
	})
}
