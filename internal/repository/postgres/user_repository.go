package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smarthire/internal/common"
	"smarthire/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*user.User, error) {
	now := time.Now().UTC()
	u := user.User{Email: email, PasswordHash: passwordHash, IsActive: true, CreatedAt: now, UpdatedAt: now}
	err := r.db.QueryRowContext(ctx, `INSERT INTO users (email, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		u.Email, u.PasswordHash, u.IsActive, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return &u, nil
}

func (r *UserRepository) CreateProfile(ctx context.Context, userID int64, role user.Role, companyID *int64) (*user.Profile, error) {
	p := user.Profile{UserID: userID, Role: role, CompanyID: companyID}
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO user_profiles (user_id, role, company_id, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.UserID, p.Role, p.CompanyID, p.IsVerified, now, now)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create profile", err)
	}
	return &p, nil
}

const userSelect = `SELECT u.id, u.email, u.password_hash, u.is_active, u.created_at, u.updated_at,
	p.role, p.company_id, p.is_verified
	FROM users u LEFT JOIN user_profiles p ON p.user_id = u.id`

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, userSelect+` WHERE u.id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, userSelect+` WHERE LOWER(u.email) = LOWER($1)`, email))
}

func (r *UserRepository) LinkCompany(ctx context.Context, userID, companyID int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE user_profiles SET company_id = $1, updated_at = $2 WHERE user_id = $3`,
		companyID, time.Now().UTC(), userID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to link company", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "profile not found", sql.ErrNoRows)
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*user.User, error) {
	var u user.User
	var role sql.NullString
	var companyID sql.NullInt64
	var isVerified sql.NullBool
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &role, &companyID, &isVerified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "user not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	if role.Valid {
		profile := user.Profile{UserID: u.ID, Role: user.Role(role.String), IsVerified: isVerified.Bool}
		if companyID.Valid {
			profile.CompanyID = &companyID.Int64
		}
		u.Profile = &profile
	}
	return &u, nil
}
