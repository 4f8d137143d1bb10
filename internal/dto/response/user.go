package response

import (
	"fmt"

	"ride-api/internal/data/entity"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	URL       string          `json:"url"`
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	Phone     string          `json:"phone"`
}

func UserURL(baseURL string, id int64) string {
	return fmt.Sprintf("%s/users/%d/", baseURL, id)
}

func UserToResponse(baseURL string, user *entity.User) UserResponse {
	return UserResponse{
		URL:       UserURL(baseURL, user.ID),
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
	}
}

func UsersToResponse(baseURL string, users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, UserToResponse(baseURL, user))
	}
	return out
}
