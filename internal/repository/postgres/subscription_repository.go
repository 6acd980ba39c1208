package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smarthire/internal/common"
	"smarthire/internal/domain/subscription"
)

type SubscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) ListPlans(ctx context.Context) ([]subscription.Plan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price, job_limit, ai_match_limit, duration_days, created_at, updated_at
		FROM subscription_plans ORDER BY price ASC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list plans", err)
	}
	defer rows.Close()
	var items []subscription.Plan
	for rows.Next() {
		var p subscription.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.JobLimit, &p.AIMatchLimit, &p.DurationDays, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan plan", err)
		}
		items = append(items, p)
	}
	return items, nil
}

func (r *SubscriptionRepository) GetPlan(ctx context.Context, id int64) (*subscription.Plan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, price, job_limit, ai_match_limit, duration_days, created_at, updated_at
		FROM subscription_plans WHERE id = $1`, id)
	var p subscription.Plan
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.JobLimit, &p.AIMatchLimit, &p.DurationDays, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "plan not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load plan", err)
	}
	return &p, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, s subscription.CompanySubscription) (*subscription.CompanySubscription, error) {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, `INSERT INTO company_subscriptions (company_id, plan_id, start_date, end_date, is_active, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		s.CompanyID, s.PlanID, s.StartDate, s.EndDate, s.IsActive, s.PaymentStatus, s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create subscription", err)
	}
	return &s, nil
}

func (r *SubscriptionRepository) ActiveByCompany(ctx context.Context, companyID int64) (*subscription.CompanySubscription, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, company_id, plan_id, start_date, end_date, is_active, payment_status, created_at, updated_at
		FROM company_subscriptions WHERE company_id = $1 AND is_active = TRUE ORDER BY end_date DESC LIMIT 1`, companyID)
	var s subscription.CompanySubscription
	if err := row.Scan(&s.ID, &s.CompanyID, &s.PlanID, &s.StartDate, &s.EndDate, &s.IsActive, &s.PaymentStatus, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "subscription not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load subscription", err)
	}
	return &s, nil
}
