package entity

import (
	"time"
)

type RideStatus string

const (
	RideStatusEnRoute RideStatus = "en-route"
	RideStatusPickup  RideStatus = "pickup"
	RideStatusDropoff RideStatus = "dropoff"
)

type Ride struct {
	Base
	Status           RideStatus `db:"status"`
	RiderID          int64      `db:"id_rider"`
	DriverID         int64      `db:"id_driver"`
	PickupLatitude   *float64   `db:"pickup_latitude"`
	PickupLongitude  *float64   `db:"pickup_longitude"`
	DropoffLatitude  *float64   `db:"dropoff_latitude"`
	DropoffLongitude *float64   `db:"dropoff_longitude"`
	PickupTime       *time.Time `db:"pickup_time"`

	// Loaded by the ride query, never persisted.
	Rider    *User
	Driver   *User
	Distance *float64
	Events   []*RideEvent
}
