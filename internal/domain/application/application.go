package application

import (
	"context"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusRejected Status = "rejected"
	StatusHired    Status = "hired"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusRejected, StatusHired:
		return true
	}
	return false
}

type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	ApplicantID int64     `json:"applicant_id"`
	ResumeURL   string    `json:"resume_url"`
	MatchScore  *float64  `json:"match_score"`
	Status      Status    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

// MatchLog is one scoring pass over an application. Scores are produced
// elsewhere and only read here.
type MatchLog struct {
	ID              int64     `json:"id"`
	ApplicationID   int64     `json:"application_id"`
	SimilarityScore float64   `json:"similarity_score"`
	KeywordsMatched []string  `json:"keywords_matched"`
	ProcessedAt     time.Time `json:"processed_at"`
}

type Repository interface {
	Create(ctx context.Context, a Application) (*Application, error)
	GetByID(ctx context.Context, id int64) (*Application, error)
	List(ctx context.Context, limit, offset int) ([]Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*Application, error)
	ListByApplicant(ctx context.Context, applicantID int64, limit, offset int) ([]Application, error)
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Application, error)
}

type MatchLogRepository interface {
	LatestByApplication(ctx context.Context, applicationID int64) (*MatchLog, error)
}
