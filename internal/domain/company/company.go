package company

import (
	"context"
	"time"
)

type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, c Company) (*Company, error)
	Update(ctx context.Context, c Company) (*Company, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, error)
}
