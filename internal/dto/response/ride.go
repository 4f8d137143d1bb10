package response

import (
	"fmt"
	"time"

	"ride-api/internal/data/entity"
)

type RideResponse struct {
	URL              string              `json:"url"`
	ID               int64               `json:"id"`
	Status           entity.RideStatus   `json:"status"`
	Rider            *UserResponse       `json:"id_rider"`
	Driver           *UserResponse       `json:"id_driver"`
	PickupLatitude   *float64            `json:"pickup_latitude"`
	PickupLongitude  *float64            `json:"pickup_longitude"`
	DropoffLatitude  *float64            `json:"dropoff_latitude"`
	DropoffLongitude *float64            `json:"dropoff_longitude"`
	PickupTime       *time.Time          `json:"pickup_time"`
	Distance         *float64            `json:"distance,omitempty"`
	TodaysRideEvents []RideEventResponse `json:"todays_ride_events"`
}

func RideURL(baseURL string, id int64) string {
	return fmt.Sprintf("%s/rides/%d/", baseURL, id)
}

func RideToResponse(baseURL string, ride *entity.Ride) RideResponse {
	resp := RideResponse{
		URL:              RideURL(baseURL, ride.ID),
		ID:               ride.ID,
		Status:           ride.Status,
		PickupLatitude:   ride.PickupLatitude,
		PickupLongitude:  ride.PickupLongitude,
		DropoffLatitude:  ride.DropoffLatitude,
		DropoffLongitude: ride.DropoffLongitude,
		PickupTime:       ride.PickupTime,
		Distance:         ride.Distance,
		TodaysRideEvents: RideEventsToResponse(baseURL, ride.Events),
	}

	if ride.Rider != nil {
		rider := UserToResponse(baseURL, ride.Rider)
		resp.Rider = &rider
	}
	if ride.Driver != nil {
		driver := UserToResponse(baseURL, ride.Driver)
		resp.Driver = &driver
	}

	return resp
}

func RidesToResponse(baseURL string, rides []*entity.Ride) []RideResponse {
	out := make([]RideResponse, 0, len(rides))
	for _, ride := range rides {
		out = append(out, RideToResponse(baseURL, ride))
	}
	return out
}
