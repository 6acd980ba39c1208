package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"smarthire/internal/common"
	"smarthire/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationSelect = `SELECT id, job_id, applicant_id, resume_url, match_score, status, applied_at FROM applications`

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) (*application.Application, error) {
	a.AppliedAt = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, `INSERT INTO applications (job_id, applicant_id, resume_url, match_score, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		a.JobID, a.ApplicantID, a.ResumeURL, a.MatchScore, a.Status, a.AppliedAt).Scan(&a.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*application.Application, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, applicationSelect+` WHERE id = $1`, id))
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*application.Application, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, applicationSelect+` WHERE job_id = $1 AND applicant_id = $2`, jobID, applicantID))
}

func (r *ApplicationRepository) List(ctx context.Context, limit, offset int) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, applicationSelect+` ORDER BY applied_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return r.scanAll(rows)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID int64, limit, offset int) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, applicationSelect+` WHERE applicant_id = $1 ORDER BY applied_at DESC LIMIT $2 OFFSET $3`,
		applicantID, limit, offset)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return r.scanAll(rows)
}

func (r *ApplicationRepository) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.job_id, a.applicant_id, a.resume_url, a.match_score, a.status, a.applied_at
		FROM applications a JOIN jobs j ON j.id = a.job_id
		WHERE j.company_id = $1 ORDER BY a.applied_at DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	return r.scanAll(rows)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status application.Status) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) scanOne(row *sql.Row) (*application.Application, error) {
	var a application.Application
	if err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.ResumeURL, &a.MatchScore, &a.Status, &a.AppliedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) scanAll(rows *sql.Rows) ([]application.Application, error) {
	defer rows.Close()
	var items []application.Application
	for rows.Next() {
		var a application.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.ResumeURL, &a.MatchScore, &a.Status, &a.AppliedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, a)
	}
	return items, nil
}

type MatchLogRepository struct {
	db *sql.DB
}

func NewMatchLogRepository(db *sql.DB) *MatchLogRepository {
	return &MatchLogRepository{db: db}
}

func (r *MatchLogRepository) LatestByApplication(ctx context.Context, applicationID int64) (*application.MatchLog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, application_id, similarity_score, keywords_matched, processed_at
		FROM ai_match_logs WHERE application_id = $1 ORDER BY processed_at DESC LIMIT 1`, applicationID)
	var log application.MatchLog
	if err := row.Scan(&log.ID, &log.ApplicationID, &log.SimilarityScore, pq.Array(&log.KeywordsMatched), &log.ProcessedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "match log not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load match log", err)
	}
	return &log, nil
}
