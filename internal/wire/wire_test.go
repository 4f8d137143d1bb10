package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ride-api/internal/data/entity"
	"ride-api/internal/data/repository"
	"ride-api/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testRepos struct {
	user      *repository.MockUserRepository
	session   *repository.MockSessionRepository
	ride      *repository.MockRideRepository
	rideEvent *repository.MockRideEventRepository
}

func newTestApp(t *testing.T) (*App, testRepos) {
	ctrl := gomock.NewController(t)
	m := testRepos{
		user:      repository.NewMockUserRepository(ctrl),
		session:   repository.NewMockSessionRepository(ctrl),
		ride:      repository.NewMockRideRepository(ctrl),
		rideEvent: repository.NewMockRideEventRepository(ctrl),
	}
	repo := &repository.Repository{User: m.user, Session: m.session, Ride: m.ride, RideEvent: m.rideEvent}

	config := &utils.Config{
		Access:     utils.AccessConfig{PublicPaths: []string{"/health", "/api/login", "/api/logout"}},
		Pagination: utils.PaginationConfig{PageSize: 3, MaxPageSize: 100},
		Session:    utils.SessionConfig{ExpiryHours: 24},
	}
	return Wiring(repo, config, zap.NewNop()), m
}

func signedIn(m testRepos, role entity.UserRole) uuid.UUID {
	token := uuid.New()
	m.session.EXPECT().FindValidSession(gomock.Any(), token).
		Return(&entity.Session{UserID: 1, Token: token, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	m.user.EXPECT().FindByID(gomock.Any(), int64(1)).
		Return(&entity.User{Base: entity.Base{ID: 1}, Role: role}, nil)
	return token
}

func TestRouter_Health(t *testing.T) {
	app, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_AdminGate(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		app, _ := newTestApp(t)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rides/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rider", func(t *testing.T) {
		app, m := newTestApp(t)
		token := signedIn(m, entity.RoleRider)

		req := httptest.NewRequest(http.MethodGet, "/rides/", nil)
		req.Header.Set("Authorization", "Bearer "+token.String())
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin", func(t *testing.T) {
		app, m := newTestApp(t)
		token := signedIn(m, entity.RoleAdmin)
		m.ride.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*entity.Ride{}, int64(0), nil)

		req := httptest.NewRequest(http.MethodGet, "/rides/?order=bogus", nil)
		req.Header.Set("Authorization", "Bearer "+token.String())
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":0`)
	})
}

func TestRouter_TrailingSlashes(t *testing.T) {
	for _, path := range []string{"/users", "/users/"} {
		app, m := newTestApp(t)
		token := signedIn(m, entity.RoleAdmin)
		m.user.EXPECT().FindAll(gomock.Any()).Return([]*entity.User{}, nil)

		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token.String())
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
