package response

import (
	"fmt"
	"time"

	"ride-api/internal/data/entity"
)

type RideEventResponse struct {
	URL         string    `json:"url"`
	ID          int64     `json:"id"`
	RideID      int64     `json:"id_ride"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func RideEventURL(baseURL string, id int64) string {
	return fmt.Sprintf("%s/rideevents/%d/", baseURL, id)
}

func RideEventToResponse(baseURL string, event *entity.RideEvent) RideEventResponse {
	return RideEventResponse{
		URL:         RideEventURL(baseURL, event.ID),
		ID:          event.ID,
		RideID:      event.RideID,
		Description: event.Description,
		CreatedAt:   event.CreatedAt,
	}
}

func RideEventsToResponse(baseURL string, events []*entity.RideEvent) []RideEventResponse {
	out := make([]RideEventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, RideEventToResponse(baseURL, event))
	}
	return out
}
