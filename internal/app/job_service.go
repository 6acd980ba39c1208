package app

import (
	"context"
	"strings"

	"smarthire/internal/common"
	"smarthire/internal/domain/company"
	"smarthire/internal/domain/job"
	"smarthire/internal/domain/user"
	"smarthire/internal/security"
)

type JobService struct {
	jobs      job.Repository
	companies company.Repository
}

func NewJobService(jobs job.Repository, companies company.Repository) *JobService {
	return &JobService{jobs: jobs, companies: companies}
}

func (s *JobService) Create(ctx context.Context, actor *user.User, j job.Job) (*job.Job, error) {
	if !security.HasRole(actor, user.RoleAdmin, user.RoleRecruiter) {
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
	if err := validateJob(j); err != nil {
		return nil, err
	}
	if actor.RoleName() == user.RoleRecruiter {
		companyID := actor.CompanyID()
		if companyID == nil {
			return nil, common.NewValidationError("invalid request", map[string]string{"company_id": "recruiter is not linked to a company"})
		}
		j.CompanyID = *companyID
	} else if _, err := s.companies.GetByID(ctx, j.CompanyID); err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewValidationError("invalid request", map[string]string{"company_id": "invalid company_id"})
		}
		return nil, err
	}
	return s.jobs.Create(ctx, j)
}

func (s *JobService) Update(ctx context.Context, actor *user.User, j job.Job) (*job.Job, error) {
	if !security.HasRole(actor, user.RoleAdmin, user.RoleRecruiter) {
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
	existing, err := s.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return nil, err
	}
	if !security.OwnsCompany(actor, existing.CompanyID) {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}
	if err := validateJob(j); err != nil {
		return nil, err
	}
	j.CompanyID = existing.CompanyID
	return s.jobs.Update(ctx, j)
}

func (s *JobService) Delete(ctx context.Context, actor *user.User, id int64) error {
	if !security.HasRole(actor, user.RoleAdmin, user.RoleRecruiter) {
		return common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
	existing, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !security.OwnsCompany(actor, existing.CompanyID) {
		return common.NewError(common.CodeForbidden, "job belongs to another company", nil)
	}
	return s.jobs.Delete(ctx, id)
}

func (s *JobService) Get(ctx context.Context, id int64) (*job.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// List applies role-based query scoping: candidates browse active postings,
// recruiters see their own company's, admins see everything the filter asks
// for.
func (s *JobService) List(ctx context.Context, actor *user.User, filter job.Filter) ([]job.Job, error) {
	filter.Limit = normalizeLimit(filter.Limit)
	filter.Offset = normalizeOffset(filter.Offset)
	switch actor.RoleName() {
	case user.RoleAdmin:
	case user.RoleRecruiter:
		if companyID := actor.CompanyID(); companyID != nil {
			filter.CompanyID = companyID
		} else {
			filter.ActiveOnly = true
		}
	default:
		filter.ActiveOnly = true
	}
	return s.jobs.List(ctx, filter)
}

func validateJob(j job.Job) error {
	fields := map[string]string{}
	if strings.TrimSpace(j.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(j.Description) == "" {
		fields["description"] = "description is required"
	}
	if !job.IsValidType(j.Type) {
		fields["job_type"] = "job_type must be full_time, part_time, contract or internship"
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		fields["salary_min"] = "salary_min exceeds salary_max"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid request", fields)
	}
	return nil
}
