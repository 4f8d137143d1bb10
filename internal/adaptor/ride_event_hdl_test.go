package adaptor

import (
	"net/http"
	"testing"
	"time"

	"ride-api/internal/data/entity"
	"ride-api/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRideEventHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := usecase.NewMockRideEventService(ctrl)
	h := NewRideEventHandler(svc, zap.NewNop())

	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	svc.EXPECT().Get(gomock.Any(), int64(2)).
		Return(&entity.RideEvent{BaseSimple: entity.BaseSimple{ID: 2, CreatedAt: created}, RideID: 1, Description: "Status changed to pickup"}, nil)

	rec := serve(http.MethodGet, "/rideevents/{id}", h.Get, "http://api.local/rideevents/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id_ride":1`)
	assert.Contains(t, rec.Body.String(), `"created_at":"2024-05-01T08:00:00Z"`)
	assert.Contains(t, rec.Body.String(), `"url":"http://api.local/rideevents/2/"`)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &usecase.ValidationError{Fields: map[string]string{"id_ride": `Invalid pk "9" - object does not exist.`}})
	rec = serve(http.MethodPost, "/rideevents", h.Create, "/rideevents", `{"id_ride":9,"description":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
