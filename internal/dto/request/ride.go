package request

import (
	"time"

	"ride-api/pkg/utils"
)

// Nullable ride fields distinguish an omitted key (keep the stored value)
// from an explicit null (clear it).
type RideRequest struct {
	Status           string                    `json:"status" validate:"omitempty,oneof=en-route pickup dropoff"`
	RiderID          *int64                    `json:"rider_id" validate:"required"`
	DriverID         *int64                    `json:"driver_id" validate:"required"`
	PickupLatitude   utils.Nullable[float64]   `json:"pickup_latitude" validate:"omitnil,latitude"`
	PickupLongitude  utils.Nullable[float64]   `json:"pickup_longitude" validate:"omitnil,longitude"`
	DropoffLatitude  utils.Nullable[float64]   `json:"dropoff_latitude" validate:"omitnil,latitude"`
	DropoffLongitude utils.Nullable[float64]   `json:"dropoff_longitude" validate:"omitnil,longitude"`
	PickupTime       utils.Nullable[time.Time] `json:"pickup_time"`
}

type RidePatchRequest struct {
	Status           *string                   `json:"status" validate:"omitnil,oneof=en-route pickup dropoff"`
	RiderID          *int64                    `json:"rider_id"`
	DriverID         *int64                    `json:"driver_id"`
	PickupLatitude   utils.Nullable[float64]   `json:"pickup_latitude" validate:"omitnil,latitude"`
	PickupLongitude  utils.Nullable[float64]   `json:"pickup_longitude" validate:"omitnil,longitude"`
	DropoffLatitude  utils.Nullable[float64]   `json:"dropoff_latitude" validate:"omitnil,latitude"`
	DropoffLongitude utils.Nullable[float64]   `json:"dropoff_longitude" validate:"omitnil,longitude"`
	PickupTime       utils.Nullable[time.Time] `json:"pickup_time"`
}

// AsPatch keeps omitted optional fields as they are stored.
func (r RideRequest) AsPatch() RidePatchRequest {
	patch := RidePatchRequest{
		RiderID:          r.RiderID,
		DriverID:         r.DriverID,
		PickupLatitude:   r.PickupLatitude,
		PickupLongitude:  r.PickupLongitude,
		DropoffLatitude:  r.DropoffLatitude,
		DropoffLongitude: r.DropoffLongitude,
		PickupTime:       r.PickupTime,
	}
	if r.Status != "" {
		patch.Status = &r.Status
	}
	return patch
}
