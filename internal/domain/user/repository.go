package user

import "context"

type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (*User, error)
	CreateProfile(ctx context.Context, userID int64, role Role, companyID *int64) (*Profile, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	LinkCompany(ctx context.Context, userID, companyID int64) error
}
