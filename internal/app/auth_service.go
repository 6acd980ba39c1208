package app

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"smarthire/internal/common"
	"smarthire/internal/domain/company"
	"smarthire/internal/domain/user"
	"smarthire/internal/security"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// AuthService implements register/login/refresh on top of the stateless token
// issuer. Logout is intentionally absent below the handler: discarding the
// pair client-side is all there is, outstanding tokens stay valid until expiry.
type AuthService struct {
	users         user.Repository
	companies     company.Repository
	engine        *security.Engine
	issuer        *security.Issuer
	authenticator *security.Authenticator
	logger        Logger
}

func NewAuthService(users user.Repository, companies company.Repository, engine *security.Engine, issuer *security.Issuer, logger Logger) *AuthService {
	return &AuthService{
		users:         users,
		companies:     companies,
		engine:        engine,
		issuer:        issuer,
		authenticator: security.NewAuthenticator(engine, users),
		logger:        logger,
	}
}

// Authenticator exposes the request-authentication entry point for middleware.
func (s *AuthService) Authenticator() *security.Authenticator {
	return s.authenticator
}

// AuthResult is the payload of every successful register/login/refresh call.
type AuthResult struct {
	Tokens *security.TokenPair
	User   *user.User
}

func (s *AuthService) Register(ctx context.Context, email, password string, role user.Role, companyID *int64) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	fields := map[string]string{}
	if email == "" {
		fields["email"] = "email is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if role == "" {
		fields["role"] = "role is required"
	} else if !user.IsValidRole(role) {
		fields["role"] = "role must be admin, recruiter or candidate"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, common.NewError(common.CodeConflict, "email already in use", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	if companyID != nil {
		if _, err := s.companies.GetByID(ctx, *companyID); err != nil {
			if common.Is(err, common.CodeNotFound) {
				return nil, common.NewValidationError("invalid request", map[string]string{"company_id": "invalid company_id"})
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}

	account, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		return nil, err
	}
	profile, err := s.users.CreateProfile(ctx, account.ID, role, companyID)
	if err != nil {
		return nil, err
	}
	account.Profile = profile

	pair, err := s.issuer.IssuePair(account.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue tokens", err)
	}
	s.logInfo(fmt.Sprintf("user registered user_id=%d role=%s", account.ID, role))
	return &AuthResult{Tokens: pair, User: account}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	fields := map[string]string{}
	if email == "" {
		fields["email"] = "email is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}

	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logInfo(fmt.Sprintf("login failed user_id=%d", account.ID))
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	if !account.IsActive {
		return nil, common.NewError(common.CodeUnauthorized, "user is inactive", nil)
	}

	pair, err := s.issuer.IssuePair(account.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue tokens", err)
	}
	s.logInfo(fmt.Sprintf("user logged in user_id=%d", account.ID))
	return &AuthResult{Tokens: pair, User: account}, nil
}

// Refresh mints a fresh pair from a refresh token. The old pair is not
// invalidated; both stay usable until their own expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, common.NewValidationError("invalid request", map[string]string{"refresh": "refresh token is required"})
	}
	claims, err := s.engine.DecodeTyped(refreshToken, security.TokenTypeRefresh)
	if err != nil {
		return nil, common.NewError(common.CodeUnauthorized, "invalid refresh token", err)
	}
	if claims.UserID <= 0 {
		return nil, common.NewError(common.CodeUnauthorized, "invalid token payload", nil)
	}
	account, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "user not found", nil)
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, common.NewError(common.CodeUnauthorized, "user not found", nil)
	}

	pair, err := s.issuer.IssuePair(account.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue tokens", err)
	}
	return &AuthResult{Tokens: pair, User: account}, nil
}

func (s *AuthService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
