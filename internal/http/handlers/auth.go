package handlers

import (
	"net/http"
	"time"

	"smarthire/internal/app"
	"smarthire/internal/common"
	"smarthire/internal/domain/user"
	"smarthire/internal/http/middleware"
	"smarthire/internal/http/response"
)

type AuthHandler struct {
	auth    *app.AuthService
	limiter middleware.Limiter
}

func NewAuthHandler(auth *app.AuthService, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	CompanyID *int64 `json:"company_id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type userPayload struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Role      *string `json:"role"`
	CompanyID *int64  `json:"company_id"`
}

type authPayload struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    userPayload `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "register") {
		return
	}
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Register(r.Context(), req.Email, req.Password, user.Role(req.Role), req.CompanyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, toAuthPayload(result))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "login") {
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toAuthPayload(result))
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Refresh(r.Context(), req.Refresh)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toAuthPayload(result))
}

// Logout confirms the caller held a valid access token and nothing more:
// there is no server-side session to tear down, the client discards its pair.
// Outstanding tokens stay valid until expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		response.Error(w, errUnauthorized())
		return
	}
	response.NoContent(w)
}

func (h *AuthHandler) allow(w http.ResponseWriter, r *http.Request, action string) bool {
	if h.limiter == nil {
		return true
	}
	key := "auth:" + action + ":ip:" + middleware.ClientIP(r)
	if !h.limiter.Allow(key, 10, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "auth rate limit exceeded", nil))
		return false
	}
	return true
}

func toAuthPayload(result *app.AuthResult) authPayload {
	payload := authPayload{
		Access:  result.Tokens.AccessToken,
		Refresh: result.Tokens.RefreshToken,
		User: userPayload{
			ID:    result.User.ID,
			Email: result.User.Email,
		},
	}
	if result.User.Profile != nil {
		role := string(result.User.Profile.Role)
		payload.User.Role = &role
		payload.User.CompanyID = result.User.Profile.CompanyID
	}
	return payload
}
