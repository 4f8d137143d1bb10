package usecase

import (
	"context"
	"testing"

	"ride-api/internal/data/entity"
	"ride-api/internal/data/repository"
	"ride-api/internal/dto/request"
	"ride-api/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validUserRequest() *request.UserRequest {
	return &request.UserRequest{
		Username:  "jane",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
		Password:  "secret123",
	}
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	m := newMockRepos(t)
	svc := NewUserService(m.repo, zap.NewNop())

	var stored *entity.User
	m.user.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *entity.User) error {
		stored = user
		user.ID = 1
		return nil
	})

	user, err := svc.Create(context.Background(), validUserRequest())
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "secret123")
	assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
	assert.Equal(t, entity.RoleRider, user.Role)
}

func TestUserService_Create_Errors(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		m := newMockRepos(t)
		svc := NewUserService(m.repo, zap.NewNop())

		req := validUserRequest()
		req.Username = "has space"
		req.Email = "nope"
		req.Role = "pilot"
		req.Password = ""

		_, err := svc.Create(context.Background(), req)
		fields := requireFieldErrors(t, err)
		assert.Len(t, fields, 4)
		assert.Contains(t, fields, "username")
		assert.Equal(t, "Enter a valid email address.", fields["email"])
		assert.Contains(t, fields, "role")
		assert.Equal(t, "This field is required.", fields["password"])
	})

	t.Run("duplicate username", func(t *testing.T) {
		m := newMockRepos(t)
		svc := NewUserService(m.repo, zap.NewNop())

		m.user.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

		_, err := svc.Create(context.Background(), validUserRequest())
		fields := requireFieldErrors(t, err)
		assert.Equal(t, "A user with that username already exists.", fields["username"])
	})
}

func TestUserService_Patch(t *testing.T) {
	t.Run("new password revokes sessions", func(t *testing.T) {
		m := newMockRepos(t)
		svc := NewUserService(m.repo, zap.NewNop())

		m.user.EXPECT().FindByID(gomock.Any(), int64(4)).
			Return(&entity.User{Base: entity.Base{ID: 4}, Username: "jane", PasswordHash: "old", Role: entity.RoleAdmin}, nil)
		m.user.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *entity.User) error {
			assert.True(t, utils.CheckPasswordHash("changed", user.PasswordHash))
			assert.Equal(t, entity.RoleAdmin, user.Role)
			assert.Equal(t, "Janet", user.FirstName)
			return nil
		})
		m.session.EXPECT().RevokeAllUserSessions(gomock.Any(), int64(4)).Return(nil)

		_, err := svc.Patch(context.Background(), 4, &request.UserPatchRequest{
			FirstName: strPtr("Janet"),
			Password:  strPtr("changed"),
		})
		require.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		m := newMockRepos(t)
		svc := NewUserService(m.repo, zap.NewNop())

		m.user.EXPECT().FindByID(gomock.Any(), int64(4)).Return(nil, nil)

		_, err := svc.Patch(context.Background(), 4, &request.UserPatchRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_Replace_RequiresPassword(t *testing.T) {
	m := newMockRepos(t)
	svc := NewUserService(m.repo, zap.NewNop())

	req := validUserRequest()
	req.Password = ""

	_, err := svc.Replace(context.Background(), 1, req)
	fields := requireFieldErrors(t, err)
	assert.Equal(t, map[string]string{"password": "This field is required."}, fields)
}

func TestUserService_Delete(t *testing.T) {
	m := newMockRepos(t)
	svc := NewUserService(m.repo, zap.NewNop())

	m.user.EXPECT().Delete(gomock.Any(), int64(2)).Return(repository.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), ErrNotFound)
}
