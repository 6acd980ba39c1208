package handlers

import (
	"net/http"
	"strconv"

	"smarthire/internal/app"
	"smarthire/internal/domain/job"
	"smarthire/internal/http/middleware"
	"smarthire/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	CompanyID   int64    `json:"company_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SalaryMin   *float64 `json:"salary_min"`
	SalaryMax   *float64 `json:"salary_max"`
	Location    string   `json:"location"`
	Type        string   `json:"job_type"`
	IsActive    *bool    `json:"is_active"`
}

func (req jobRequest) toJob(id int64) job.Job {
	j := job.Job{
		ID:          id,
		CompanyID:   req.CompanyID,
		Title:       req.Title,
		Description: req.Description,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Location:    req.Location,
		Type:        job.Type(req.Type),
		IsActive:    true,
	}
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}
	return j
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), actor, req.toJob(0))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.jobs.Update(r.Context(), actor, req.toJob(id))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), actor, id); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	filter := job.Filter{
		Limit:  queryInt(r, "limit", 20),
		Offset: queryInt(r, "offset", 0),
	}
	if raw := r.URL.Query().Get("company_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			filter.CompanyID = &id
		}
	}
	items, err := h.jobs.List(r.Context(), actor, filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
