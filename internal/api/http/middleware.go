package http

import (
	"context"
	"net/http"
	"strings"

	"docshelf-backend/internal/domain"
	"docshelf-backend/internal/security"
)

type claimsKey struct{}

// AuthMiddleware authenticates bearer tokens and enforces role checks.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tokenManager security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tokenManager}
}

// RequireAdmin rejects callers that are not authenticated admins. The
// validated claims are stored in the request context for the handler.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.authenticate(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "UnauthorizedError", "missing or invalid access token")
			return
		}
		if !claims.HasRole(domain.RoleAdmin) {
			writeError(w, http.StatusForbidden, "ForbiddenError", "admin access required")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	}
}

func (m *AuthMiddleware) authenticate(r *http.Request) (*security.UserClaims, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, false
	}
	claims, err := m.tokenManager.ValidateToken(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// claimsFromContext returns the claims stored by RequireAdmin.
func claimsFromContext(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsKey{}).(*security.UserClaims)
	return claims
}
