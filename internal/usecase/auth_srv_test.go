package usecase

import (
	"context"
	"testing"
	"time"

	"ride-api/internal/data/entity"
	"ride-api/internal/data/repository"
	"ride-api/internal/dto/request"
	"ride-api/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(m *mockRepos) *authService {
	cfg := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	svc := NewAuthService(m.repo, cfg, zap.NewNop()).(*authService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	admin := &entity.User{Base: entity.Base{ID: 1}, Username: "root", PasswordHash: hash, Role: entity.RoleAdmin}

	tests := []struct {
		name     string
		req      request.LoginRequest
		user     *entity.User
		wantErr  error
		wantSave bool
	}{
		{name: "success", req: request.LoginRequest{Username: "root", Password: "secret123"}, user: admin, wantSave: true},
		{name: "wrong password", req: request.LoginRequest{Username: "root", Password: "guess"}, user: admin, wantErr: ErrInvalidCredentials},
		{name: "unknown user", req: request.LoginRequest{Username: "ghost", Password: "secret123"}, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockRepos(t)
			svc := newTestAuthService(m)

			m.user.EXPECT().FindByUsername(gomock.Any(), tt.req.Username).Return(tt.user, nil)
			if tt.wantSave {
				m.session.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *entity.Session) error {
					assert.Equal(t, int64(1), s.UserID)
					assert.Equal(t, fixedNow.Add(24*time.Hour), s.ExpiresAt)
					require.NotNil(t, s.UserAgent)
					assert.Equal(t, "curl/8", *s.UserAgent)
					return nil
				})
			}

			resp, err := svc.Login(context.Background(), &tt.req, "curl/8", "10.0.0.1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), resp.UserID)
			assert.Equal(t, entity.RoleAdmin, resp.Role)
			_, parseErr := uuid.Parse(resp.Token)
			assert.NoError(t, parseErr)
		})
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	m := newMockRepos(t)
	svc := newTestAuthService(m)

	_, err := svc.Login(context.Background(), &request.LoginRequest{}, "", "")
	fields := requireFieldErrors(t, err)
	assert.Len(t, fields, 2)
}

func TestAuthService_Logout(t *testing.T) {
	m := newMockRepos(t)
	svc := newTestAuthService(m)
	token := uuid.New()

	m.session.EXPECT().Revoke(gomock.Any(), token).Return(repository.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Logout(context.Background(), token), ErrNotFound)

	m.session.EXPECT().Revoke(gomock.Any(), token).Return(nil)
	assert.NoError(t, svc.Logout(context.Background(), token))
}

func TestAuthService_CleanExpiredSessions(t *testing.T) {
	m := newMockRepos(t)
	svc := newTestAuthService(m)

	m.session.EXPECT().CleanExpiredSessions(gomock.Any()).Return(int64(3), nil)
	n, err := svc.CleanExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
