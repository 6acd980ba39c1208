package postgres

import (
	"context"
	"database/sql"
	"time"

	"smarthire/internal/common"
	"smarthire/internal/domain/audit"
)

type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, e audit.Entry) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO user_audit_logs (user_id, method, path, status_code, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.UserID, e.Method, e.Path, e.StatusCode, e.IPAddress, time.Now().UTC())
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to write audit entry", err)
	}
	return nil
}
