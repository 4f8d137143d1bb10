package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ride-api/internal/data/entity"
	"ride-api/internal/data/repository"
	"ride-api/internal/dto/request"
	"ride-api/internal/dto/response"
	"ride-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_srv.go -destination=mock_auth_srv.go -package=usecase

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token uuid.UUID) error
	CleanExpiredSessions(ctx context.Context) (int64, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
		now:    time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user.ID, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token uuid.UUID) error {
	err := s.repo.Session.Revoke(ctx, token)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("Session revoked")
	return nil
}

func (s *authService) CleanExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("Expired sessions removed", zap.Int64("count", n))
	}
	return n, nil
}

func (s *authService) createSession(ctx context.Context, userID int64, userAgent, ipAddress string) (*entity.Session, error) {
	now := s.now()
	session := &entity.Session{
		ID:        uuid.New(),
		CreatedAt: now,
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}
