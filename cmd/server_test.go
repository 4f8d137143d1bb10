package cmd

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"ride-api/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAPIServer_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- APIServer(ctx, http.NotFoundHandler(), "0", zap.NewNop())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestSessionJanitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := usecase.NewMockAuthService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 4)

	auth.EXPECT().CleanExpiredSessions(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		calls <- struct{}{}
		return 0, errors.New("db down")
	}).MinTimes(1)

	finished := make(chan struct{})
	go func() {
		SessionJanitor(ctx, auth, 5*time.Millisecond, zap.NewNop())
		close(finished)
	}()

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor never ran")
	}
	cancel()
	<-finished
}
