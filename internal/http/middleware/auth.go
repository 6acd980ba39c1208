package middleware

import (
	"context"
	"net/http"

	"smarthire/internal/common"
	"smarthire/internal/domain/user"
	"smarthire/internal/http/response"
	"smarthire/internal/security"
)

const contextUserKey contextKey = "auth_user"

type AuthMiddleware struct {
	authenticator *security.Authenticator
}

func NewAuthMiddleware(authenticator *security.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// Authenticate resolves a bearer token when one is present. A missing header
// passes through anonymous: handlers and role gates downstream decide whether
// that is acceptable.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, err := m.authenticator.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			response.Error(w, err)
			return
		}
		if account == nil {
			next.ServeHTTP(w, r)
			return
		}
		SetAuditUser(r.Context(), account.ID)
		ctx := context.WithValue(r.Context(), contextUserKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser rejects anonymous requests.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			response.Error(w, common.NewError(common.CodeUnauthorized, "authentication required", nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects identities outside the allowed role set.
func RequireRole(roles ...user.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := UserFromContext(r.Context())
			if !ok {
				response.Error(w, common.NewError(common.CodeUnauthorized, "authentication required", nil))
				return
			}
			if !security.HasRole(account, roles...) {
				response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func UserFromContext(ctx context.Context) (*user.User, bool) {
	account, ok := ctx.Value(contextUserKey).(*user.User)
	return account, ok && account != nil
}
