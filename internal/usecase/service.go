package usecase

import (
	"ride-api/internal/data/repository"
	"ride-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Ride      RideService
	RideEvent RideEventService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo, log),
		Ride:      NewRideService(repo, log),
		RideEvent: NewRideEventService(repo, log),
	}
}
