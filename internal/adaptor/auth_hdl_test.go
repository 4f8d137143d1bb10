package adaptor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ride-api/internal/dto/response"
	"ride-api/internal/usecase"
	"ride-api/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := usecase.NewMockAuthService(ctrl)
	h := NewAuthHandler(svc, zap.NewNop())

	svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&response.AuthResponse{UserID: 1, Token: "t"}, nil)
	rec := serve(http.MethodPost, "/api/login", h.Login, "/api/login", `{"username":"root","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, usecase.ErrInvalidCredentials)
	rec = serve(http.MethodPost, "/api/login", h.Login, "/api/login", `{"username":"root","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := usecase.NewMockAuthService(ctrl)
	h := NewAuthHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := uuid.New()
	svc.EXPECT().Logout(gomock.Any(), token).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", strings.NewReader(""))
	req = req.WithContext(utils.SetTokenContext(req.Context(), token))
	rec = httptest.NewRecorder()
	h.Logout(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
