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

//go:generate mockgen -source=user_repo.go -destination=mock_user_repo.go -package=repository

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, username, password, first_name, last_name, email, phone, role, created_at, updated_at`

func scanUser(row rowScanner) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Phone,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts the user and fills in the generated id and timestamps.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password, first_name, last_name, email, phone, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := ur.db.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return user, nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return user, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, password = $3, first_name = $4, last_name = $5,
		    email = $6, phone = $7, role = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := ur.db.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.Role,
	).Scan(&user.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrRecordNotFound
	}
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}

	return nil
}

// Delete removes the user; rides and sessions referencing it cascade.
func (ur *userRepository) Delete(ctx context.Context, id int64) error {
	result, err := ur.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	ur.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}
