package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"smarthire/internal/common"
	"smarthire/internal/domain/application"
	"smarthire/internal/domain/company"
	"smarthire/internal/domain/job"
	"smarthire/internal/domain/subscription"
	"smarthire/internal/domain/user"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]*user.User
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		nextID:  1,
		byID:    make(map[int64]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, email, passwordHash string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[strings.ToLower(email)]; exists {
		return nil, common.NewError(common.CodeConflict, "email already in use", nil)
	}
	u := &user.User{
		ID:           r.nextID,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return cloneUser(u), nil
}

func (r *fakeUserRepo) CreateProfile(ctx context.Context, userID int64, role user.Role, companyID *int64) (*user.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	u.Profile = &user.Profile{UserID: userID, Role: role, CompanyID: companyID}
	return &user.Profile{UserID: userID, Role: role, CompanyID: companyID}, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		return cloneUser(u), nil
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byEmail[strings.ToLower(email)]; ok {
		return cloneUser(u), nil
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

func (r *fakeUserRepo) LinkCompany(ctx context.Context, userID, companyID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok || u.Profile == nil {
		return common.NewError(common.CodeNotFound, "profile not found", nil)
	}
	id := companyID
	u.Profile.CompanyID = &id
	return nil
}

func cloneUser(u *user.User) *user.User {
	copied := *u
	if u.Profile != nil {
		profile := *u.Profile
		copied.Profile = &profile
	}
	return &copied
}

type fakeCompanyRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*company.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{nextID: 1, byID: make(map[int64]*company.Company)}
}

func (r *fakeCompanyRepo) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = time.Now().UTC()
	stored := c
	r.byID[c.ID] = &stored
	return &c, nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, c company.Company) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "company not found", nil)
	}
	stored := c
	r.byID[c.ID] = &stored
	return &c, nil
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.NewError(common.CodeNotFound, "company not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id int64) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.byID[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "company not found", nil)
}

func (r *fakeCompanyRepo) List(ctx context.Context, limit, offset int) ([]company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]company.Company, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

type fakeJobRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{nextID: 1, byID: make(map[int64]*job.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = r.nextID
	r.nextID++
	j.CreatedAt = time.Now().UTC()
	stored := j
	r.byID[j.ID] = &stored
	return &j, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[j.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	stored := j
	r.byID[j.ID] = &stored
	return &j, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id int64) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.byID[id]; ok {
		copied := *j
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *fakeJobRepo) List(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []job.Job{}
	for _, j := range r.byID {
		if filter.CompanyID != nil && j.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.ActiveOnly && !j.IsActive {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

type fakeApplicationRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*application.Application
	jobs   *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{nextID: 1, byID: make(map[int64]*application.Application), jobs: jobs}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	a.AppliedAt = time.Now().UTC()
	stored := a
	r.byID[a.ID] = &stored
	return &a, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id int64) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.byID[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) List(ctx context.Context, limit, offset int) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []application.Application{}
	for _, a := range r.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID int64, limit, offset int) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []application.Application{}
	for _, a := range r.byID {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []application.Application{}
	for _, a := range r.byID {
		posting, err := r.jobs.GetByID(ctx, a.JobID)
		if err != nil {
			continue
		}
		if posting.CompanyID == companyID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id int64, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	a.Status = status
	copied := *a
	return &copied, nil
}

type fakeMatchLogRepo struct {
	mu   sync.Mutex
	logs map[int64][]application.MatchLog
}

func newFakeMatchLogRepo() *fakeMatchLogRepo {
	return &fakeMatchLogRepo{logs: make(map[int64][]application.MatchLog)}
}

func (r *fakeMatchLogRepo) add(log application.MatchLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs[log.ApplicationID] = append(r.logs[log.ApplicationID], log)
}

func (r *fakeMatchLogRepo) LatestByApplication(ctx context.Context, applicationID int64) (*application.MatchLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.logs[applicationID]
	if len(entries) == 0 {
		return nil, common.NewError(common.CodeNotFound, "match log not found", nil)
	}
	latest := entries[len(entries)-1]
	return &latest, nil
}

type fakeSubscriptionRepo struct {
	mu     sync.Mutex
	nextID int64
	plans  map[int64]*subscription.Plan
	active map[int64]*subscription.CompanySubscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		nextID: 1,
		plans:  make(map[int64]*subscription.Plan),
		active: make(map[int64]*subscription.CompanySubscription),
	}
}

func (r *fakeSubscriptionRepo) addPlan(p subscription.Plan) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := p
	r.plans[p.ID] = &stored
}

func (r *fakeSubscriptionRepo) ListPlans(ctx context.Context) ([]subscription.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]subscription.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) GetPlan(ctx context.Context, id int64) (*subscription.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.plans[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "plan not found", nil)
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, s subscription.CompanySubscription) (*subscription.CompanySubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID
	r.nextID++
	stored := s
	r.active[s.CompanyID] = &stored
	return &s, nil
}

func (r *fakeSubscriptionRepo) ActiveByCompany(ctx context.Context, companyID int64) (*subscription.CompanySubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.active[companyID]; ok && s.IsActive {
		copied := *s
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "no active subscription found", nil)
}
