package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ride-api/internal/data/entity"
	"ride-api/internal/data/repository"
	"ride-api/internal/dto/request"
	"ride-api/pkg/utils"

	"go.uber.org/zap"
)

//go:generate mockgen -source=ride_srv.go -destination=mock_ride_srv.go -package=usecase

// Window of ride events attached to every ride read.
const recentEventsWindow = 24 * time.Hour

type RideService interface {
	List(ctx context.Context, filter request.RideFilter) ([]*entity.Ride, int64, error)
	Get(ctx context.Context, id int64, latitude, longitude string) (*entity.Ride, error)
	Create(ctx context.Context, req *request.RideRequest) (*entity.Ride, error)
	Replace(ctx context.Context, id int64, req *request.RideRequest) (*entity.Ride, error)
	Patch(ctx context.Context, id int64, req *request.RidePatchRequest) (*entity.Ride, error)
	Delete(ctx context.Context, id int64) error
}

type rideService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewRideService(repo *repository.Repository, log *zap.Logger) RideService {
	return &rideService{
		repo: repo,
		log:  log.With(zap.String("service", "ride")),
		now:  time.Now,
	}
}

func validRideStatus(status string) bool {
	switch entity.RideStatus(status) {
	case entity.RideStatusEnRoute, entity.RideStatusPickup, entity.RideStatusDropoff:
		return true
	}
	return false
}

// withReference annotates q with distance when both coordinates parse.
func withReference(q repository.RideQuery, latitude, longitude string) repository.RideQuery {
	lat, okLat := utils.ParseFloat(latitude)
	lon, okLon := utils.ParseFloat(longitude)
	if !okLat || !okLon {
		return q
	}
	return q.WithDistanceFrom(lat, lon)
}

func (s *rideService) eventsSince() time.Time {
	return s.now().Add(-recentEventsWindow)
}

func (s *rideService) List(ctx context.Context, filter request.RideFilter) ([]*entity.Ride, int64, error) {
	q := repository.NewRideQuery()

	if filter.Status != "" {
		if !validRideStatus(filter.Status) {
			return nil, 0, validationError(map[string]string{
				"status": fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", filter.Status),
			})
		}
		q = q.WhereStatus(entity.RideStatus(filter.Status))
	}
	if filter.RiderEmail != "" {
		q = q.WhereRiderEmail(filter.RiderEmail)
	}

	q = withReference(q, filter.Latitude, filter.Longitude).
		OrderBy(repository.ParseOrder(filter.Order)...).
		Page(filter.Limit(), filter.Offset())

	rides, total, err := s.repo.Ride.List(ctx, q, s.eventsSince())
	if err != nil {
		return nil, 0, err
	}

	if len(rides) == 0 && filter.Page > 1 {
		return nil, 0, ErrInvalidPage
	}

	return rides, total, nil
}

func (s *rideService) Get(ctx context.Context, id int64, latitude, longitude string) (*entity.Ride, error) {
	q := withReference(repository.NewRideQuery().WhereID(id), latitude, longitude)
	return s.fetch(ctx, q)
}

func (s *rideService) fetch(ctx context.Context, q repository.RideQuery) (*entity.Ride, error) {
	rides, _, err := s.repo.Ride.List(ctx, q, s.eventsSince())
	if err != nil {
		return nil, err
	}
	if len(rides) == 0 {
		return nil, ErrNotFound
	}
	return rides[0], nil
}

// checkUsers reports every supplied user reference that does not exist.
func (s *rideService) checkUsers(ctx context.Context, refs map[string]*int64) error {
	fields := make(map[string]string)
	for field, id := range refs {
		if id == nil {
			continue
		}
		user, err := s.repo.User.FindByID(ctx, *id)
		if err != nil {
			return err
		}
		if user == nil {
			fields[field] = fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *id)
		}
	}
	if len(fields) > 0 {
		return validationError(fields)
	}
	return nil
}

func (s *rideService) Create(ctx context.Context, req *request.RideRequest) (*entity.Ride, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if err := s.checkUsers(ctx, map[string]*int64{"rider_id": req.RiderID, "driver_id": req.DriverID}); err != nil {
		return nil, err
	}

	status := entity.RideStatusEnRoute
	if req.Status != "" {
		status = entity.RideStatus(req.Status)
	}

	ride := &entity.Ride{
		Status:           status,
		RiderID:          *req.RiderID,
		DriverID:         *req.DriverID,
		PickupLatitude:   req.PickupLatitude.Value,
		PickupLongitude:  req.PickupLongitude.Value,
		DropoffLatitude:  req.DropoffLatitude.Value,
		DropoffLongitude: req.DropoffLongitude.Value,
		PickupTime:       req.PickupTime.Value,
	}

	if err := s.repo.Ride.Create(ctx, ride); err != nil {
		return nil, err
	}

	s.log.Info("Ride created",
		zap.Int64("ride_id", ride.ID),
		zap.Int64("rider_id", ride.RiderID),
		zap.Int64("driver_id", ride.DriverID),
	)

	return s.fetch(ctx, repository.NewRideQuery().WhereID(ride.ID))
}

func (s *rideService) Replace(ctx context.Context, id int64, req *request.RideRequest) (*entity.Ride, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	patch := req.AsPatch()
	return s.Patch(ctx, id, &patch)
}

func (s *rideService) Patch(ctx context.Context, id int64, req *request.RidePatchRequest) (*entity.Ride, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	ride, err := s.fetch(ctx, repository.NewRideQuery().WhereID(id))
	if err != nil {
		return nil, err
	}

	if err := s.checkUsers(ctx, map[string]*int64{"rider_id": req.RiderID, "driver_id": req.DriverID}); err != nil {
		return nil, err
	}

	if req.Status != nil {
		ride.Status = entity.RideStatus(*req.Status)
	}
	if req.RiderID != nil {
		ride.RiderID = *req.RiderID
	}
	if req.DriverID != nil {
		ride.DriverID = *req.DriverID
	}
	req.PickupLatitude.Apply(&ride.PickupLatitude)
	req.PickupLongitude.Apply(&ride.PickupLongitude)
	req.DropoffLatitude.Apply(&ride.DropoffLatitude)
	req.DropoffLongitude.Apply(&ride.DropoffLongitude)
	req.PickupTime.Apply(&ride.PickupTime)

	err = s.repo.Ride.Update(ctx, ride)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("Ride updated", zap.Int64("ride_id", ride.ID), zap.String("status", string(ride.Status)))

	return s.fetch(ctx, repository.NewRideQuery().WhereID(ride.ID))
}

func (s *rideService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Ride.Delete(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
