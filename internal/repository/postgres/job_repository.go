package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smarthire/internal/common"
	"smarthire/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	j.IsActive = true
	err := r.db.QueryRowContext(ctx, `INSERT INTO jobs (company_id, title, description, salary_min, salary_max, location, job_type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		j.CompanyID, j.Title, j.Description, j.SalaryMin, j.SalaryMax, j.Location, j.Type, j.IsActive, j.CreatedAt, j.UpdatedAt).Scan(&j.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	j.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, description = $2, salary_min = $3, salary_max = $4, location = $5, job_type = $6, is_active = $7, updated_at = $8
		WHERE id = $9`,
		j.Title, j.Description, j.SalaryMin, j.SalaryMax, j.Location, j.Type, j.IsActive, j.UpdatedAt, j.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return &j, nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, company_id, title, description, salary_min, salary_max, location, job_type, is_active, created_at, updated_at
		FROM jobs WHERE id = $1`, id)
	var j job.Job
	if err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.SalaryMin, &j.SalaryMax, &j.Location, &j.Type, &j.IsActive, &j.CreatedAt, &j.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &j, nil
}

func (r *JobRepository) List(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	query := `SELECT id, company_id, title, description, salary_min, salary_max, location, job_type, is_active, created_at, updated_at FROM jobs`
	var conditions []string
	var args []any
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		conditions = append(conditions, fmt.Sprintf("company_id = $%d", len(args)))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}
	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.SalaryMin, &j.SalaryMax, &j.Location, &j.Type, &j.IsActive, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, j)
	}
	return items, nil
}
