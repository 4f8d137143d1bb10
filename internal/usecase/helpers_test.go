package usecase

import (
	"testing"

	"ride-api/internal/data/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type mockRepos struct {
	user      *repository.MockUserRepository
	session   *repository.MockSessionRepository
	ride      *repository.MockRideRepository
	rideEvent *repository.MockRideEventRepository
	repo      *repository.Repository
}

func newMockRepos(t *testing.T) *mockRepos {
	ctrl := gomock.NewController(t)
	m := &mockRepos{
		user:      repository.NewMockUserRepository(ctrl),
		session:   repository.NewMockSessionRepository(ctrl),
		ride:      repository.NewMockRideRepository(ctrl),
		rideEvent: repository.NewMockRideEventRepository(ctrl),
	}
	m.repo = &repository.Repository{
		User:      m.user,
		Session:   m.session,
		Ride:      m.ride,
		RideEvent: m.rideEvent,
	}
	return m
}

func requireFieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func int64Ptr(v int64) *int64       { return &v }
func strPtr(v string) *string       { return &v }
func float64Ptr(v float64) *float64 { return &v }
