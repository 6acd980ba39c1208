package subscription

import (
	"context"
	"time"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Plan struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	JobLimit     int       `json:"job_limit"`
	AIMatchLimit int       `json:"ai_match_limit"`
	DurationDays int       `json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CompanySubscription struct {
	ID            int64         `json:"id"`
	CompanyID     int64         `json:"company_id"`
	PlanID        int64         `json:"plan_id"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	IsActive      bool          `json:"is_active"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type Repository interface {
	ListPlans(ctx context.Context) ([]Plan, error)
	GetPlan(ctx context.Context, id int64) (*Plan, error)
	Create(ctx context.Context, s CompanySubscription) (*CompanySubscription, error)
	ActiveByCompany(ctx context.Context, companyID int64) (*CompanySubscription, error)
}
