package app

import (
	"context"
	"strings"

	"smarthire/internal/common"
	"smarthire/internal/domain/application"
	"smarthire/internal/domain/job"
	"smarthire/internal/domain/user"
	"smarthire/internal/security"
)

type ApplicationService struct {
	applications application.Repository
	jobs         job.Repository
}

func NewApplicationService(applications application.Repository, jobs job.Repository) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs}
}

func (s *ApplicationService) Apply(ctx context.Context, actor *user.User, jobID int64, resumeURL string) (*application.Application, error) {
	if !security.HasRole(actor, user.RoleCandidate) {
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
	if strings.TrimSpace(resumeURL) == "" {
		return nil, common.NewValidationError("invalid request", map[string]string{"resume_url": "resume_url is required"})
	}
	posting, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !posting.IsActive {
		return nil, common.NewValidationError("invalid request", map[string]string{"job_id": "job is not active"})
	}
	if _, err := s.applications.FindByJobAndApplicant(ctx, jobID, actor.ID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	return s.applications.Create(ctx, application.Application{
		JobID:       jobID,
		ApplicantID: actor.ID,
		ResumeURL:   resumeURL,
		Status:      application.StatusPending,
	})
}

// List scopes by role: candidates see their own applications, recruiters the
// ones against their company's jobs, admins everything.
func (s *ApplicationService) List(ctx context.Context, actor *user.User, limit, offset int) ([]application.Application, error) {
	limit = normalizeLimit(limit)
	offset = normalizeOffset(offset)
	switch actor.RoleName() {
	case user.RoleAdmin:
		return s.applications.List(ctx, limit, offset)
	case user.RoleRecruiter:
		companyID := actor.CompanyID()
		if companyID == nil {
			return []application.Application{}, nil
		}
		return s.applications.ListByCompany(ctx, *companyID, limit, offset)
	case user.RoleCandidate:
		return s.applications.ListByApplicant(ctx, actor.ID, limit, offset)
	}
	return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
}

func (s *ApplicationService) Get(ctx context.Context, actor *user.User, id int64) (*application.Application, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeAccess(ctx, actor, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, actor *user.User, id int64, status application.Status) (*application.Application, error) {
	if !security.HasRole(actor, user.RoleAdmin, user.RoleRecruiter) {
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
	if !application.IsValidStatus(status) {
		return nil, common.NewValidationError("invalid request", map[string]string{"status": "status must be pending, reviewed, rejected or hired"})
	}
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	posting, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if !security.OwnsCompany(actor, posting.CompanyID) {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another company", nil)
	}
	return s.applications.UpdateStatus(ctx, id, status)
}

func (s *ApplicationService) authorizeAccess(ctx context.Context, actor *user.User, app *application.Application) error {
	if actor.ID == app.ApplicantID {
		return nil
	}
	posting, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return err
	}
	if security.OwnsCompany(actor, posting.CompanyID) {
		return nil
	}
	return common.NewError(common.CodeForbidden, "application belongs to another account", nil)
}
