package response

import (
	"encoding/json"
	"testing"
	"time"

	"ride-api/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRideToResponse(t *testing.T) {
	lat, lon := 40.0, -73.0
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	ride := &entity.Ride{
		Base:            entity.Base{ID: 9},
		Status:          entity.RideStatusPickup,
		RiderID:         1,
		DriverID:        2,
		PickupLatitude:  &lat,
		PickupLongitude: &lon,
		Rider:           &entity.User{Base: entity.Base{ID: 1}, Username: "rider", PasswordHash: "$2a$10$hash"},
		Driver:          &entity.User{Base: entity.Base{ID: 2}, Username: "driver", PasswordHash: "$2a$10$hash"},
		Events: []*entity.RideEvent{
			{BaseSimple: entity.BaseSimple{ID: 3, CreatedAt: created}, RideID: 9, Description: "Status changed to pickup"},
		},
	}

	resp := RideToResponse("http://api.local", ride)
	assert.Equal(t, "http://api.local/rides/9/", resp.URL)
	assert.Equal(t, "http://api.local/users/1/", resp.Rider.URL)
	assert.Equal(t, "http://api.local/users/2/", resp.Driver.URL)
	require.Len(t, resp.TodaysRideEvents, 1)
	assert.Equal(t, "http://api.local/rideevents/3/", resp.TodaysRideEvents[0].URL)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "distance")
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "$2a$10$hash")

	dist := 12.5
	ride.Distance = &dist
	body, err = json.Marshal(RideToResponse("http://api.local", ride))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"distance":12.5`)
}
