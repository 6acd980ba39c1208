package app

import (
	"context"
	"testing"
	"time"

	"smarthire/internal/common"
	"smarthire/internal/domain/application"
	"smarthire/internal/domain/user"
)

type applicationFixture struct {
	svc       *ApplicationService
	jobs      *fakeJobRepo
	apps      *fakeApplicationRepo
	companyID int64
	jobID     int64
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	companies := newFakeCompanyRepo()
	created, err := companies.Create(context.Background(), companyNamed("Acme"))
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	jobs := newFakeJobRepo()
	posting, err := jobs.Create(context.Background(), validJob(created.ID))
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	apps := newFakeApplicationRepo(jobs)
	return &applicationFixture{
		svc:       NewApplicationService(apps, jobs),
		jobs:      jobs,
		apps:      apps,
		companyID: created.ID,
		jobID:     posting.ID,
	}
}

func TestApply(t *testing.T) {
	fx := newApplicationFixture(t)
	candidate := testUser(1, user.RoleCandidate, nil)

	created, err := fx.svc.Apply(context.Background(), candidate, fx.jobID, "https://cv.example.com/jane.pdf")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if created.Status != application.StatusPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
	if created.ApplicantID != candidate.ID {
		t.Errorf("applicant_id = %d, want %d", created.ApplicantID, candidate.ID)
	}

	// One application per job and candidate.
	if _, err := fx.svc.Apply(context.Background(), candidate, fx.jobID, "https://cv.example.com/jane.pdf"); !common.Is(err, common.CodeConflict) {
		t.Errorf("duplicate apply: err = %v, want conflict", err)
	}
}

func TestApplyGuards(t *testing.T) {
	fx := newApplicationFixture(t)

	recruiterCompany := fx.companyID
	if _, err := fx.svc.Apply(context.Background(), testUser(2, user.RoleRecruiter, &recruiterCompany), fx.jobID, "https://cv.example.com/r.pdf"); !common.Is(err, common.CodeForbidden) {
		t.Errorf("recruiter apply: err = %v, want forbidden", err)
	}

	candidate := testUser(1, user.RoleCandidate, nil)
	if _, err := fx.svc.Apply(context.Background(), candidate, fx.jobID, "  "); !common.Is(err, common.CodeValidation) {
		t.Errorf("missing resume: err = %v, want validation error", err)
	}
	if _, err := fx.svc.Apply(context.Background(), candidate, fx.jobID+99, "https://cv.example.com/j.pdf"); !common.Is(err, common.CodeNotFound) {
		t.Errorf("unknown job: err = %v, want not found", err)
	}
}

func TestApplyInactiveJob(t *testing.T) {
	fx := newApplicationFixture(t)
	inactive := validJob(fx.companyID)
	inactive.IsActive = false
	closed, err := fx.jobs.Create(context.Background(), inactive)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	candidate := testUser(1, user.RoleCandidate, nil)
	if _, err := fx.svc.Apply(context.Background(), candidate, closed.ID, "https://cv.example.com/j.pdf"); !common.Is(err, common.CodeValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestApplicationListScoping(t *testing.T) {
	fx := newApplicationFixture(t)
	otherCompany := fx.companyID + 1
	foreignJob, err := fx.jobs.Create(context.Background(), validJob(otherCompany))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	alice := testUser(1, user.RoleCandidate, nil)
	bob := testUser(2, user.RoleCandidate, nil)
	if _, err := fx.svc.Apply(context.Background(), alice, fx.jobID, "https://cv.example.com/a.pdf"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := fx.svc.Apply(context.Background(), bob, foreignJob.ID, "https://cv.example.com/b.pdf"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	adminList, err := fx.svc.List(context.Background(), testUser(3, user.RoleAdmin, nil), 20, 0)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(adminList) != 2 {
		t.Errorf("admin sees %d, want 2", len(adminList))
	}

	recruiterList, err := fx.svc.List(context.Background(), testUser(4, user.RoleRecruiter, &fx.companyID), 20, 0)
	if err != nil {
		t.Fatalf("recruiter list: %v", err)
	}
	if len(recruiterList) != 1 || recruiterList[0].ApplicantID != alice.ID {
		t.Errorf("recruiter list = %+v, want only alice's", recruiterList)
	}

	aliceList, err := fx.svc.List(context.Background(), alice, 20, 0)
	if err != nil {
		t.Fatalf("candidate list: %v", err)
	}
	if len(aliceList) != 1 || aliceList[0].ApplicantID != alice.ID {
		t.Errorf("candidate list = %+v, want own only", aliceList)
	}

	unlinkedList, err := fx.svc.List(context.Background(), testUser(5, user.RoleRecruiter, nil), 20, 0)
	if err != nil {
		t.Fatalf("unlinked recruiter list: %v", err)
	}
	if len(unlinkedList) != 0 {
		t.Errorf("unlinked recruiter sees %d, want 0", len(unlinkedList))
	}
}

func TestApplicationGetAccess(t *testing.T) {
	fx := newApplicationFixture(t)
	alice := testUser(1, user.RoleCandidate, nil)
	created, err := fx.svc.Apply(context.Background(), alice, fx.jobID, "https://cv.example.com/a.pdf")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := fx.svc.Get(context.Background(), alice, created.ID); err != nil {
		t.Errorf("applicant get: %v", err)
	}
	if _, err := fx.svc.Get(context.Background(), testUser(2, user.RoleRecruiter, &fx.companyID), created.ID); err != nil {
		t.Errorf("owning recruiter get: %v", err)
	}
	if _, err := fx.svc.Get(context.Background(), testUser(3, user.RoleCandidate, nil), created.ID); !common.Is(err, common.CodeForbidden) {
		t.Errorf("other candidate get: err = %v, want forbidden", err)
	}
	otherCompany := fx.companyID + 1
	if _, err := fx.svc.Get(context.Background(), testUser(4, user.RoleRecruiter, &otherCompany), created.ID); !common.Is(err, common.CodeForbidden) {
		t.Errorf("foreign recruiter get: err = %v, want forbidden", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	fx := newApplicationFixture(t)
	alice := testUser(1, user.RoleCandidate, nil)
	created, err := fx.svc.Apply(context.Background(), alice, fx.jobID, "https://cv.example.com/a.pdf")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := fx.svc.UpdateStatus(context.Background(), alice, created.ID, application.StatusHired); !common.Is(err, common.CodeForbidden) {
		t.Errorf("candidate update: err = %v, want forbidden", err)
	}

	recruiter := testUser(2, user.RoleRecruiter, &fx.companyID)
	if _, err := fx.svc.UpdateStatus(context.Background(), recruiter, created.ID, "archived"); !common.Is(err, common.CodeValidation) {
		t.Errorf("bad status: err = %v, want validation error", err)
	}

	updated, err := fx.svc.UpdateStatus(context.Background(), recruiter, created.ID, application.StatusReviewed)
	if err != nil {
		t.Fatalf("recruiter update: %v", err)
	}
	if updated.Status != application.StatusReviewed {
		t.Errorf("status = %q, want reviewed", updated.Status)
	}

	otherCompany := fx.companyID + 1
	if _, err := fx.svc.UpdateStatus(context.Background(), testUser(3, user.RoleRecruiter, &otherCompany), created.ID, application.StatusRejected); !common.Is(err, common.CodeForbidden) {
		t.Errorf("foreign recruiter update: err = %v, want forbidden", err)
	}
}

func TestMatchReport(t *testing.T) {
	fx := newApplicationFixture(t)
	matchLogs := newFakeMatchLogRepo()
	matchSvc := NewMatchService(fx.apps, matchLogs, fx.jobs)

	alice := testUser(1, user.RoleCandidate, nil)
	created, err := fx.svc.Apply(context.Background(), alice, fx.jobID, "https://cv.example.com/a.pdf")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// No scoring pass yet: the report still comes back, log absent.
	report, err := matchSvc.Report(context.Background(), alice, created.ID)
	if err != nil {
		t.Fatalf("report without log: %v", err)
	}
	if report.LatestMatchLog != nil {
		t.Errorf("log = %+v, want nil", report.LatestMatchLog)
	}

	matchLogs.add(application.MatchLog{
		ID:              1,
		ApplicationID:   created.ID,
		SimilarityScore: 0.42,
		KeywordsMatched: []string{"go", "postgres"},
		ProcessedAt:     time.Now().UTC(),
	})
	matchLogs.add(application.MatchLog{
		ID:              2,
		ApplicationID:   created.ID,
		SimilarityScore: 0.87,
		KeywordsMatched: []string{"go", "postgres", "redis"},
		ProcessedAt:     time.Now().UTC(),
	})

	report, err = matchSvc.Report(context.Background(), alice, created.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.LatestMatchLog == nil || report.LatestMatchLog.ID != 2 {
		t.Fatalf("log = %+v, want latest (id 2)", report.LatestMatchLog)
	}

	if _, err := matchSvc.Report(context.Background(), testUser(9, user.RoleCandidate, nil), created.ID); !common.Is(err, common.CodeForbidden) {
		t.Errorf("stranger report: err = %v, want forbidden", err)
	}
	if _, err := matchSvc.Report(context.Background(), testUser(2, user.RoleRecruiter, &fx.companyID), created.ID); err != nil {
		t.Errorf("owning recruiter report: %v", err)
	}
}
