package app

import (
	"context"
	"fmt"
	"strings"

	"smarthire/internal/common"
	"smarthire/internal/domain/company"
	"smarthire/internal/domain/user"
	"smarthire/internal/security"
)

type CompanyService struct {
	companies company.Repository
	users     user.Repository
	logger    Logger
}

func NewCompanyService(companies company.Repository, users user.Repository, logger Logger) *CompanyService {
	return &CompanyService{companies: companies, users: users, logger: logger}
}

// Create stores a company. The first company a recruiter without an
// affiliation creates is linked to their profile.
func (s *CompanyService) Create(ctx context.Context, actor *user.User, c company.Company) (*company.Company, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, common.NewValidationError("invalid request", map[string]string{"name": "name is required"})
	}
	created, err := s.companies.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	if actor.RoleName() == user.RoleRecruiter && actor.CompanyID() == nil {
		if err := s.users.LinkCompany(ctx, actor.ID, created.ID); err != nil {
			return nil, err
		}
		actor.Profile.CompanyID = &created.ID
		if s.logger != nil {
			s.logger.Info(fmt.Sprintf("recruiter linked to company user_id=%d company_id=%d", actor.ID, created.ID))
		}
	}
	return created, nil
}

func (s *CompanyService) Update(ctx context.Context, actor *user.User, c company.Company) (*company.Company, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, common.NewValidationError("invalid request", map[string]string{"name": "name is required"})
	}
	if _, err := s.companies.GetByID(ctx, c.ID); err != nil {
		return nil, err
	}
	if !security.OwnsCompany(actor, c.ID) {
		return nil, common.NewError(common.CodeForbidden, "company belongs to another account", nil)
	}
	return s.companies.Update(ctx, c)
}

func (s *CompanyService) Delete(ctx context.Context, actor *user.User, id int64) error {
	if _, err := s.companies.GetByID(ctx, id); err != nil {
		return err
	}
	if !security.OwnsCompany(actor, id) {
		return common.NewError(common.CodeForbidden, "company belongs to another account", nil)
	}
	return s.companies.Delete(ctx, id)
}

func (s *CompanyService) Get(ctx context.Context, id int64) (*company.Company, error) {
	return s.companies.GetByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context, limit, offset int) ([]company.Company, error) {
	return s.companies.List(ctx, normalizeLimit(limit), normalizeOffset(offset))
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
