package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
	TokenKey     contextKey = "token"
)

// Principal is the authenticated caller attached by the auth middleware.
type Principal struct {
	UserID int64
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}

func SetPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(Principal)
	return p, ok
}

func SetTokenContext(ctx context.Context, token uuid.UUID) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (uuid.UUID, bool) {
	token, ok := ctx.Value(TokenKey).(uuid.UUID)
	return token, ok
}
