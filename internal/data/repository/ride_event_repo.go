package repository

import (
	"context"
	"errors"
	"fmt"

	"ride-api/internal/data/entity"
	"ride-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ride_event_repo.go -destination=mock_ride_event_repo.go -package=repository

type RideEventRepository interface {
	Create(ctx context.Context, event *entity.RideEvent) error
	FindByID(ctx context.Context, id int64) (*entity.RideEvent, error)
	FindAll(ctx context.Context) ([]*entity.RideEvent, error)
	Update(ctx context.Context, event *entity.RideEvent) error
	Delete(ctx context.Context, id int64) error
}

type rideEventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRideEventRepository(db database.PgxIface, log *zap.Logger) RideEventRepository {
	return &rideEventRepository{
		db:  db,
		log: log.With(zap.String("repository", "ride_event")),
	}
}

// Create stores the event; created_at always comes from the database.
func (r *rideEventRepository) Create(ctx context.Context, event *entity.RideEvent) error {
	query := `
		INSERT INTO ride_events (id_ride, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, event.RideID, event.Description).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create ride event",
			zap.Error(err),
			zap.Int64("ride_id", event.RideID),
		)
		return fmt.Errorf("create ride event: %w", err)
	}

	return nil
}

func (r *rideEventRepository) FindByID(ctx context.Context, id int64) (*entity.RideEvent, error) {
	query := `SELECT id, id_ride, description, created_at FROM ride_events WHERE id = $1`

	var event entity.RideEvent
	err := r.db.QueryRow(ctx, query, id).Scan(&event.ID, &event.RideID, &event.Description, &event.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ride event by ID",
			zap.Error(err),
			zap.Int64("ride_event_id", id),
		)
		return nil, fmt.Errorf("find ride event %d: %w", id, err)
	}

	return &event, nil
}

func (r *rideEventRepository) FindAll(ctx context.Context) ([]*entity.RideEvent, error) {
	query := `SELECT id, id_ride, description, created_at FROM ride_events ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all ride events", zap.Error(err))
		return nil, fmt.Errorf("find all ride events: %w", err)
	}
	defer rows.Close()

	events := make([]*entity.RideEvent, 0)
	for rows.Next() {
		var event entity.RideEvent
		if err := rows.Scan(&event.ID, &event.RideID, &event.Description, &event.CreatedAt); err != nil {
			r.log.Error("Failed to scan ride event row", zap.Error(err))
			return nil, fmt.Errorf("scan ride event row: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ride event rows: %w", err)
	}

	return events, nil
}

// Update rewrites ride and description; created_at is left untouched.
func (r *rideEventRepository) Update(ctx context.Context, event *entity.RideEvent) error {
	query := `
		UPDATE ride_events
		SET id_ride = $2, description = $3
		WHERE id = $1
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query, event.ID, event.RideID, event.Description).Scan(&event.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrRecordNotFound
	}
	if err != nil {
		r.log.Error("Failed to update ride event",
			zap.Error(err),
			zap.Int64("ride_event_id", event.ID),
		)
		return fmt.Errorf("update ride event %d: %w", event.ID, err)
	}

	return nil
}

func (r *rideEventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM ride_events WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete ride event",
			zap.Error(err),
			zap.Int64("ride_event_id", id),
		)
		return fmt.Errorf("delete ride event %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	return nil
}
