package app

import (
	"context"
	"time"

	"smarthire/internal/common"
	"smarthire/internal/domain/subscription"
	"smarthire/internal/domain/user"
)

type SubscriptionService struct {
	subscriptions subscription.Repository
}

func NewSubscriptionService(subscriptions subscription.Repository) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions}
}

func (s *SubscriptionService) ListPlans(ctx context.Context) ([]subscription.Plan, error) {
	return s.subscriptions.ListPlans(ctx)
}

func (s *SubscriptionService) GetPlan(ctx context.Context, id int64) (*subscription.Plan, error) {
	return s.subscriptions.GetPlan(ctx, id)
}

func (s *SubscriptionService) CompanySubscription(ctx context.Context, actor *user.User) (*subscription.CompanySubscription, error) {
	companyID := actor.CompanyID()
	if companyID == nil {
		return nil, common.NewValidationError("invalid request", map[string]string{"company_id": "user is not linked to a company"})
	}
	sub, err := s.subscriptions.ActiveByCompany(ctx, *companyID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeNotFound, "no active subscription found", nil)
		}
		return nil, err
	}
	return sub, nil
}

// Subscribe opens a pending-payment subscription; the payment stubs never
// flip it to paid.
func (s *SubscriptionService) Subscribe(ctx context.Context, actor *user.User, planID int64) (*subscription.CompanySubscription, error) {
	companyID := actor.CompanyID()
	if companyID == nil {
		return nil, common.NewValidationError("invalid request", map[string]string{"company_id": "user is not linked to a company"})
	}
	plan, err := s.subscriptions.GetPlan(ctx, planID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewValidationError("invalid request", map[string]string{"plan_id": "invalid plan_id"})
		}
		return nil, err
	}
	start := time.Now().UTC().Truncate(24 * time.Hour)
	return s.subscriptions.Create(ctx, subscription.CompanySubscription{
		CompanyID:     *companyID,
		PlanID:        plan.ID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, plan.DurationDays),
		IsActive:      true,
		PaymentStatus: subscription.PaymentPending,
	})
}
