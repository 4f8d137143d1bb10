package response

import (
	"time"

	"ride-api/internal/data/entity"
)

type AuthResponse struct {
	UserID    int64           `json:"user_id"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Role      entity.UserRole `json:"role"`
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
