package repository

import (
	"ride-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Ride      RideRepository
	RideEvent RideEventRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Ride:      NewRideRepository(db, log),
		RideEvent: NewRideEventRepository(db, log),
	}
}
