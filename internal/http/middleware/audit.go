package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"smarthire/internal/domain/audit"
	"smarthire/internal/observability"
)

const contextAuditKey contextKey = "audit_record"

// auditRecord is placed in the context before authentication runs so the
// auth middleware can report the resolved user back to the audit writer.
type auditRecord struct {
	userID *int64
}

// SetAuditUser attributes the in-flight request to a user. No-op when the
// audit middleware is not installed.
func SetAuditUser(ctx context.Context, userID int64) {
	if record, ok := ctx.Value(contextAuditKey).(*auditRecord); ok {
		record.userID = &userID
	}
}

// Audit persists one entry per handled request, best-effort: a failed write
// is logged and dropped, never surfaced to the client.
func Audit(repo audit.Repository, logger observability.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if repo == nil {
				next.ServeHTTP(w, r)
				return
			}
			record := &auditRecord{}
			ctx := context.WithValue(r.Context(), contextAuditKey, record)
			sw := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(sw, r.WithContext(ctx))

			writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
			defer cancel()
			err := repo.Create(writeCtx, audit.Entry{
				UserID:     record.userID,
				Method:     r.Method,
				Path:       r.URL.Path,
				StatusCode: sw.status,
				IPAddress:  ClientIP(r),
			})
			if err != nil && logger != nil {
				logger.Error(fmt.Sprintf("audit write failed: %v", err))
			}
		})
	}
}
