package app

import (
	"context"

	"smarthire/internal/common"
	"smarthire/internal/domain/application"
	"smarthire/internal/domain/job"
	"smarthire/internal/domain/user"
	"smarthire/internal/security"
)

// MatchService reads AI match results. Scores are computed by an external
// pipeline; this service only surfaces them.
type MatchService struct {
	applications application.Repository
	matchLogs    application.MatchLogRepository
	jobs         job.Repository
}

func NewMatchService(applications application.Repository, matchLogs application.MatchLogRepository, jobs job.Repository) *MatchService {
	return &MatchService{applications: applications, matchLogs: matchLogs, jobs: jobs}
}

type MatchReport struct {
	Application    *application.Application `json:"application"`
	LatestMatchLog *application.MatchLog    `json:"latest_match_log"`
}

func (s *MatchService) Report(ctx context.Context, actor *user.User, applicationID int64) (*MatchReport, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if actor.ID != app.ApplicantID {
		posting, err := s.jobs.GetByID(ctx, app.JobID)
		if err != nil {
			return nil, err
		}
		if !security.OwnsCompany(actor, posting.CompanyID) {
			return nil, common.NewError(common.CodeForbidden, "application belongs to another account", nil)
		}
	}
	log, err := s.matchLogs.LatestByApplication(ctx, applicationID)
	if err != nil && !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	return &MatchReport{Application: app, LatestMatchLog: log}, nil
}
