package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ride-api/internal/data/entity"
	"ride-api/internal/data/repository"
	"ride-api/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func principalEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := utils.GetPrincipal(r.Context())
		if ok {
			w.Header().Set("X-User", string(p.Role))
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	token := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(s *repository.MockSessionRepository, u *repository.MockUserRepository)
		wantStatus int
		wantRole   string
	}{
		{
			name:       "no header stays anonymous",
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed token stays anonymous",
			header:     "Bearer not-a-uuid",
			wantStatus: http.StatusOK,
		},
		{
			name:   "expired session stays anonymous",
			header: "Bearer " + token.String(),
			setup: func(s *repository.MockSessionRepository, u *repository.MockUserRepository) {
				s.EXPECT().FindValidSession(gomock.Any(), token).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "valid session sets principal",
			header: "bearer " + token.String(),
			setup: func(s *repository.MockSessionRepository, u *repository.MockUserRepository) {
				s.EXPECT().FindValidSession(gomock.Any(), token).Return(&entity.Session{UserID: 3, Token: token}, nil)
				u.EXPECT().FindByID(gomock.Any(), int64(3)).Return(&entity.User{Base: entity.Base{ID: 3}, Role: entity.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
			wantRole:   "admin",
		},
		{
			name:   "storage failure",
			header: "Bearer " + token.String(),
			setup: func(s *repository.MockSessionRepository, u *repository.MockUserRepository) {
				s.EXPECT().FindValidSession(gomock.Any(), token).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions := repository.NewMockSessionRepository(ctrl)
			users := repository.NewMockUserRepository(ctrl)
			if tt.setup != nil {
				tt.setup(sessions, users)
			}

			handler := Authenticate(sessions, users, zap.NewNop())(principalEcho(t))

			req := httptest.NewRequest(http.MethodGet, "/rides/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRole, rec.Header().Get("X-User"))
		})
	}
}

func TestAccessControl(t *testing.T) {
	cfg := utils.AccessConfig{PublicPaths: []string{"/health", "/api/login"}}
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := AccessControl(cfg, zap.NewNop())(ok)

	tests := []struct {
		name       string
		path       string
		principal  *utils.Principal
		wantStatus int
	}{
		{"public path anonymous", "/health", nil, http.StatusOK},
		{"public prefix anonymous", "/api/login/", nil, http.StatusOK},
		{"public subpath anonymous", "/health/live", nil, http.StatusOK},
		{"lookalike of public path", "/healthz", nil, http.StatusUnauthorized},
		{"public name as segment prefix", "/health-admin/users", nil, http.StatusUnauthorized},
		{"protected anonymous", "/rides/", nil, http.StatusUnauthorized},
		{"protected rider", "/rides/", &utils.Principal{UserID: 2, Role: "rider"}, http.StatusForbidden},
		{"protected driver", "/users/1/", &utils.Principal{UserID: 3, Role: "driver"}, http.StatusForbidden},
		{"protected admin", "/rides/", &utils.Principal{UserID: 1, Role: "admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.principal != nil {
				req = req.WithContext(utils.SetPrincipal(req.Context(), *tt.principal))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestIsPublicPath(t *testing.T) {
	prefixes := []string{"/health", "/docs/", ""}

	assert.True(t, isPublicPath(prefixes, "/health"))
	assert.True(t, isPublicPath(prefixes, "/health/"))
	assert.True(t, isPublicPath(prefixes, "/docs"))
	assert.True(t, isPublicPath(prefixes, "/docs/index.html"))
	assert.False(t, isPublicPath(prefixes, "/healthz"))
	assert.False(t, isPublicPath(prefixes, "/docsx"))
	assert.False(t, isPublicPath(prefixes, "/rides/"))
	assert.False(t, isPublicPath(nil, "/health"))
}

func TestBearerToken(t *testing.T) {
	id := uuid.New()

	got, ok := bearerToken("Bearer " + id.String())
	require.True(t, ok)
	assert.Equal(t, id, got)

	for _, header := range []string{"", "Bearer", "Basic " + id.String(), "Bearer  "} {
		_, ok := bearerToken(header)
		assert.False(t, ok, "header=%q", header)
	}
}
