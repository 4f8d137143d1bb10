package middleware

import (
	"net/http"
	"strings"

	"ride-api/internal/data/repository"
	"ride-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authenticate resolves a Bearer session token into a Principal. Requests
// without a usable token pass through anonymous; AccessControl decides what
// they may reach.
func Authenticate(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if session == nil {
				logger.Debug("Invalid or expired session")
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err), zap.Int64("user_id", session.UserID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetPrincipal(r.Context(), utils.Principal{UserID: user.ID, Role: string(user.Role)})
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (uuid.UUID, bool) {
	scheme, value, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return uuid.Nil, false
	}
	token, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, false
	}
	return token, true
}

// AccessControl lets paths under a public prefix through untouched and
// requires an authenticated admin everywhere else.
func AccessControl(cfg utils.AccessConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(cfg.PublicPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			principal, ok := utils.GetPrincipal(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !principal.IsAdmin() {
				logger.Warn("Non-admin access attempt",
					zap.Int64("user_id", principal.UserID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isPublicPath matches whole path segments: "/health" covers "/health" and
// "/health/live" but not "/healthz".
func isPublicPath(prefixes []string, path string) bool {
	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix == "" || path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
