package audit

import (
	"context"
	"time"
)

// Entry records one handled request. Persistence is best-effort: a failed
// write never fails the request it describes.
type Entry struct {
	ID         int64     `json:"id"`
	UserID     *int64    `json:"user_id"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, e Entry) error
}
