package security

import "smarthire/internal/domain/user"

// HasRole reports whether the identity holds one of the allowed roles.
// Anonymous identities and users without a profile never pass.
func HasRole(u *user.User, allowed ...user.Role) bool {
	if u == nil || u.Profile == nil {
		return false
	}
	for _, role := range allowed {
		if u.Profile.Role == role {
			return true
		}
	}
	return false
}

// OwnsCompany reports whether the identity may act on records of the given
// company. Admins own everything; everyone else needs a matching affiliation.
// Which listings get scoped by this predicate is up to the services.
func OwnsCompany(u *user.User, companyID int64) bool {
	if u == nil || u.Profile == nil {
		return false
	}
	if u.Profile.Role == user.RoleAdmin {
		return true
	}
	return u.Profile.CompanyID != nil && *u.Profile.CompanyID == companyID
}
