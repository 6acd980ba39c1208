package security

import (
	"context"
	"errors"
	"strings"

	"smarthire/internal/common"
	"smarthire/internal/domain/user"
)

// Authenticator resolves bearer tokens to active users. It holds no state
// between requests: every call verifies the token and hits the user store.
type Authenticator struct {
	engine *Engine
	users  user.Repository
}

func NewAuthenticator(engine *Engine, users user.Repository) *Authenticator {
	return &Authenticator{engine: engine, users: users}
}

// Authenticate resolves the Authorization header to a user. An absent header
// yields (nil, nil): whether anonymous access is acceptable is decided by the
// authorization layer, not here.
func (a *Authenticator) Authenticate(ctx context.Context, authorizationHeader string) (*user.User, error) {
	if authorizationHeader == "" {
		return nil, nil
	}
	// Split on any whitespace run, not a single space: clients are lax about
	// the separator and the upstream contract tolerates that.
	fields := strings.Fields(authorizationHeader)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
		return nil, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil)
	}
	claims, err := a.engine.DecodeTyped(fields[1], TokenTypeAccess)
	if err != nil {
		return nil, common.NewError(common.CodeUnauthorized, authFailureMessage(err), err)
	}
	if claims.UserID <= 0 {
		return nil, common.NewError(common.CodeUnauthorized, "invalid token payload", nil)
	}
	account, err := a.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, common.NewError(common.CodeUnauthorized, "user not found", err)
	}
	if !account.IsActive {
		return nil, common.NewError(common.CodeUnauthorized, "user not found", nil)
	}
	return account, nil
}

// authFailureMessage keeps the diagnostics distinct while every failure stays
// a 401 to the caller.
func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "token expired"
	case errors.Is(err, ErrInvalidSignature):
		return "invalid token signature"
	case errors.Is(err, ErrWrongTokenType):
		return "wrong token type"
	case errors.Is(err, ErrInvalidPayload):
		return "invalid token payload"
	default:
		return "invalid token"
	}
}
