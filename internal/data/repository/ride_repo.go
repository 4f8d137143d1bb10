package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ride-api/internal/data/entity"
	"ride-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ride_repo.go -destination=mock_ride_repo.go -package=repository

type RideRepository interface {
	Create(ctx context.Context, ride *entity.Ride) error
	Update(ctx context.Context, ride *entity.Ride) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	// List runs q and attaches to each ride its events created at or after
	// eventsSince. It returns the page and the total number of matches.
	List(ctx context.Context, q RideQuery, eventsSince time.Time) ([]*entity.Ride, int64, error)
}

type rideRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRideRepository(db database.PgxIface, log *zap.Logger) RideRepository {
	return &rideRepository{
		db:  db,
		log: log.With(zap.String("repository", "ride")),
	}
}

func (r *rideRepository) Create(ctx context.Context, ride *entity.Ride) error {
	query := `
		INSERT INTO rides (status, id_rider, id_driver,
		                   pickup_latitude, pickup_longitude,
		                   dropoff_latitude, dropoff_longitude, pickup_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		ride.Status,
		ride.RiderID,
		ride.DriverID,
		ride.PickupLatitude,
		ride.PickupLongitude,
		ride.DropoffLatitude,
		ride.DropoffLongitude,
		ride.PickupTime,
	).Scan(&ride.ID, &ride.CreatedAt, &ride.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create ride",
			zap.Error(err),
			zap.Int64("rider_id", ride.RiderID),
			zap.Int64("driver_id", ride.DriverID),
		)
		return fmt.Errorf("create ride: %w", err)
	}

	return nil
}

func (r *rideRepository) Update(ctx context.Context, ride *entity.Ride) error {
	query := `
		UPDATE rides
		SET status = $2, id_rider = $3, id_driver = $4,
		    pickup_latitude = $5, pickup_longitude = $6,
		    dropoff_latitude = $7, dropoff_longitude = $8,
		    pickup_time = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		ride.ID,
		ride.Status,
		ride.RiderID,
		ride.DriverID,
		ride.PickupLatitude,
		ride.PickupLongitude,
		ride.DropoffLatitude,
		ride.DropoffLongitude,
		ride.PickupTime,
	).Scan(&ride.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrRecordNotFound
	}
	if err != nil {
		r.log.Error("Failed to update ride",
			zap.Error(err),
			zap.Int64("ride_id", ride.ID),
		)
		return fmt.Errorf("update ride %d: %w", ride.ID, err)
	}

	return nil
}

func (r *rideRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM rides WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete ride",
			zap.Error(err),
			zap.Int64("ride_id", id),
		)
		return fmt.Errorf("delete ride %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	r.log.Info("Ride deleted", zap.Int64("ride_id", id))
	return nil
}

func (r *rideRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM rides WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check ride", zap.Error(err), zap.Int64("ride_id", id))
		return false, fmt.Errorf("check ride %d: %w", id, err)
	}
	return exists, nil
}

func (r *rideRepository) List(ctx context.Context, q RideQuery, eventsSince time.Time) ([]*entity.Ride, int64, error) {
	sql, args := q.Build()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to list rides", zap.Error(err))
		return nil, 0, fmt.Errorf("list rides: %w", err)
	}
	defer rows.Close()

	var total int64
	rides := make([]*entity.Ride, 0)
	for rows.Next() {
		ride := entity.Ride{Rider: &entity.User{}, Driver: &entity.User{}}
		err := rows.Scan(
			&ride.ID,
			&ride.Status,
			&ride.RiderID,
			&ride.DriverID,
			&ride.PickupLatitude,
			&ride.PickupLongitude,
			&ride.DropoffLatitude,
			&ride.DropoffLongitude,
			&ride.PickupTime,
			&ride.CreatedAt,
			&ride.UpdatedAt,
			&ride.Rider.ID,
			&ride.Rider.Username,
			&ride.Rider.FirstName,
			&ride.Rider.LastName,
			&ride.Rider.Email,
			&ride.Rider.Phone,
			&ride.Rider.Role,
			&ride.Rider.CreatedAt,
			&ride.Rider.UpdatedAt,
			&ride.Driver.ID,
			&ride.Driver.Username,
			&ride.Driver.FirstName,
			&ride.Driver.LastName,
			&ride.Driver.Email,
			&ride.Driver.Phone,
			&ride.Driver.Role,
			&ride.Driver.CreatedAt,
			&ride.Driver.UpdatedAt,
			&ride.Distance,
			&total,
		)
		if err != nil {
			r.log.Error("Failed to scan ride row", zap.Error(err))
			return nil, 0, fmt.Errorf("scan ride row: %w", err)
		}
		ride.Events = make([]*entity.RideEvent, 0)
		rides = append(rides, &ride)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, 0, fmt.Errorf("iterate ride rows: %w", err)
	}

	if len(rides) == 0 {
		return rides, total, nil
	}

	if err := r.attachEvents(ctx, rides, eventsSince); err != nil {
		return nil, 0, err
	}

	r.log.Debug("Rides listed",
		zap.Int("count", len(rides)),
		zap.Int64("total", total),
	)

	return rides, total, nil
}

// attachEvents loads the events of every ride in one round trip.
func (r *rideRepository) attachEvents(ctx context.Context, rides []*entity.Ride, since time.Time) error {
	ids := make([]int64, len(rides))
	byID := make(map[int64]*entity.Ride, len(rides))
	for i, ride := range rides {
		ids[i] = ride.ID
		byID[ride.ID] = ride
	}

	query := `
		SELECT id, id_ride, description, created_at
		FROM ride_events
		WHERE id_ride = ANY($1) AND created_at >= $2
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query, ids, since)
	if err != nil {
		r.log.Error("Failed to load ride events", zap.Error(err))
		return fmt.Errorf("load ride events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var event entity.RideEvent
		if err := rows.Scan(&event.ID, &event.RideID, &event.Description, &event.CreatedAt); err != nil {
			r.log.Error("Failed to scan ride event row", zap.Error(err))
			return fmt.Errorf("scan ride event row: %w", err)
		}
		if ride, ok := byID[event.RideID]; ok {
			ride.Events = append(ride.Events, &event)
		}
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return fmt.Errorf("iterate ride event rows: %w", err)
	}

	return nil
}
