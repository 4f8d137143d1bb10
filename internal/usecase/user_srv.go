package usecase

import (
	"context"
	"errors"
	"fmt"

	"ride-api/internal/data/entity"
	"ride-api/internal/data/repository"
	"ride-api/internal/dto/request"
	"ride-api/pkg/utils"

	"go.uber.org/zap"
)

//go:generate mockgen -source=user_srv.go -destination=mock_user_srv.go -package=usecase

const msgDuplicateUsername = "A user with that username already exists."

type UserService interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, req *request.UserRequest) (*entity.User, error)
	Replace(ctx context.Context, id int64, req *request.UserRequest) (*entity.User, error)
	Patch(ctx context.Context, id int64, req *request.UserPatchRequest) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) List(ctx context.Context) ([]*entity.User, error) {
	return s.repo.User.FindAll(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req *request.UserRequest) (*entity.User, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleRider
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         role,
	}

	err = s.repo.User.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, validationError(map[string]string{"username": msgDuplicateUsername})
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("User created", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *userService) Replace(ctx context.Context, id int64, req *request.UserRequest) (*entity.User, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	patch := req.AsPatch()
	return s.Patch(ctx, id, &patch)
}

func (s *userService) Patch(ctx context.Context, id int64, req *request.UserPatchRequest) (*entity.User, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}

	passwordChanged := false
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
		passwordChanged = true
	}

	err = s.repo.User.Update(ctx, user)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, validationError(map[string]string{"username": msgDuplicateUsername})
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, err
	}

	// a new password invalidates every open session of the user
	if passwordChanged {
		if err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	s.log.Info("User updated", zap.Int64("user_id", user.ID))
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	err := s.repo.User.Delete(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
