package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smarthire/internal/common"
	"smarthire/internal/domain/company"
)

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, `INSERT INTO companies (name, industry, website, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		c.Name, c.Industry, c.Website, c.Description, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create company", err)
	}
	return &c, nil
}

func (r *CompanyRepository) Update(ctx context.Context, c company.Company) (*company.Company, error) {
	c.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE companies SET name = $1, industry = $2, website = $3, description = $4, updated_at = $5
		WHERE id = $6`,
		c.Name, c.Industry, c.Website, c.Description, c.UpdatedAt, c.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update company", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "company not found", sql.ErrNoRows)
	}
	return &c, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete company", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "company not found", sql.ErrNoRows)
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, industry, website, description, created_at, updated_at FROM companies WHERE id = $1`, id)
	var c company.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Website, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company", err)
	}
	return &c, nil
}

func (r *CompanyRepository) List(ctx context.Context, limit, offset int) ([]company.Company, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, industry, website, description, created_at, updated_at
		FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list companies", err)
	}
	defer rows.Close()
	var items []company.Company
	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.Website, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan company", err)
		}
		items = append(items, c)
	}
	return items, nil
}
