package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ride-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/rides/?page=2", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	requestID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, requestID)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, requestID, fields["request_id"])
	assert.Equal(t, "/rides/", fields["path"])
	assert.Equal(t, "page=2", fields["query"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, len("short and stout"), fields["bytes"])
}

func TestLogger_KeepsIncomingRequestID(t *testing.T) {
	handler := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	handler := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestCORS(t *testing.T) {
	called := false
	handler := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodOptions, "/rides/", nil)
	req.Header.Set("Origin", "http://app.local")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://app.local", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rides/", nil))
	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
