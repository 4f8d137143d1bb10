package usecase

import (
	"context"
	"errors"
	"fmt"

	"ride-api/internal/data/entity"
	"ride-api/internal/data/repository"
	"ride-api/internal/dto/request"

	"go.uber.org/zap"
)

//go:generate mockgen -source=ride_event_srv.go -destination=mock_ride_event_srv.go -package=usecase

type RideEventService interface {
	List(ctx context.Context) ([]*entity.RideEvent, error)
	Get(ctx context.Context, id int64) (*entity.RideEvent, error)
	Create(ctx context.Context, req *request.RideEventRequest) (*entity.RideEvent, error)
	Replace(ctx context.Context, id int64, req *request.RideEventRequest) (*entity.RideEvent, error)
	Patch(ctx context.Context, id int64, req *request.RideEventPatchRequest) (*entity.RideEvent, error)
	Delete(ctx context.Context, id int64) error
}

type rideEventService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRideEventService(repo *repository.Repository, log *zap.Logger) RideEventService {
	return &rideEventService{
		repo: repo,
		log:  log.With(zap.String("service", "ride_event")),
	}
}

func (s *rideEventService) List(ctx context.Context) ([]*entity.RideEvent, error) {
	return s.repo.RideEvent.FindAll(ctx)
}

func (s *rideEventService) Get(ctx context.Context, id int64) (*entity.RideEvent, error) {
	event, err := s.repo.RideEvent.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

func (s *rideEventService) checkRide(ctx context.Context, id int64) error {
	exists, err := s.repo.Ride.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return validationError(map[string]string{
			"id_ride": fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id),
		})
	}
	return nil
}

func (s *rideEventService) Create(ctx context.Context, req *request.RideEventRequest) (*entity.RideEvent, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if err := s.checkRide(ctx, *req.RideID); err != nil {
		return nil, err
	}

	event := &entity.RideEvent{
		RideID:      *req.RideID,
		Description: req.Description,
	}
	if err := s.repo.RideEvent.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("Ride event created", zap.Int64("ride_event_id", event.ID), zap.Int64("ride_id", event.RideID))
	return event, nil
}

func (s *rideEventService) Replace(ctx context.Context, id int64, req *request.RideEventRequest) (*entity.RideEvent, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	patch := req.AsPatch()
	return s.Patch(ctx, id, &patch)
}

func (s *rideEventService) Patch(ctx context.Context, id int64, req *request.RideEventPatchRequest) (*entity.RideEvent, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RideID != nil {
		if err := s.checkRide(ctx, *req.RideID); err != nil {
			return nil, err
		}
		event.RideID = *req.RideID
	}
	if req.Description != nil {
		event.Description = *req.Description
	}

	err = s.repo.RideEvent.Update(ctx, event)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *rideEventService) Delete(ctx context.Context, id int64) error {
	err := s.repo.RideEvent.Delete(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
