package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
	RoleCandidate Role = "candidate"
)

func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleRecruiter, RoleCandidate:
		return true
	}
	return false
}

// Profile carries the role and optional company affiliation. A user without a
// profile is treated as having no role.
type Profile struct {
	UserID     int64  `json:"user_id"`
	Role       Role   `json:"role"`
	CompanyID  *int64 `json:"company_id"`
	IsVerified bool   `json:"is_verified"`
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	Profile      *Profile  `json:"profile,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role returns the profile role, or "" when the user has no profile.
func (u *User) RoleName() Role {
	if u == nil || u.Profile == nil {
		return ""
	}
	return u.Profile.Role
}

// CompanyID returns the linked company, or nil when absent.
func (u *User) CompanyID() *int64 {
	if u == nil || u.Profile == nil {
		return nil
	}
	return u.Profile.CompanyID
}
