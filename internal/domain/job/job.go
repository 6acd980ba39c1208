package job

import (
	"context"
	"time"
)

type Type string

const (
	TypeFullTime   Type = "full_time"
	TypePartTime   Type = "part_time"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
)

func IsValidType(t Type) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	}
	return false
}

type Job struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SalaryMin   *float64  `json:"salary_min"`
	SalaryMax   *float64  `json:"salary_max"`
	Location    string    `json:"location"`
	Type        Type      `json:"job_type"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter narrows listings. A nil CompanyID means all companies; ActiveOnly
// drops closed postings.
type Filter struct {
	CompanyID  *int64
	ActiveOnly bool
	Limit      int
	Offset     int
}

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	Update(ctx context.Context, j Job) (*Job, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	List(ctx context.Context, filter Filter) ([]Job, error)
}
