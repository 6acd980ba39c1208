package handlers

import (
	"net/http"

	"smarthire/internal/app"
	"smarthire/internal/domain/company"
	"smarthire/internal/http/middleware"
	"smarthire/internal/http/response"
)

type CompanyHandler struct {
	companies *app.CompanyService
}

func NewCompanyHandler(companies *app.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

type companyRequest struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.companies.Create(r.Context(), actor, company.Company{
		Name:        req.Name,
		Industry:    req.Industry,
		Website:     req.Website,
		Description: req.Description,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.companies.Update(r.Context(), actor, company.Company{
		ID:          id,
		Name:        req.Name,
		Industry:    req.Industry,
		Website:     req.Website,
		Description: req.Description,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.companies.Delete(r.Context(), actor, id); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.companies.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.companies.List(r.Context(), queryInt(r, "limit", 20), queryInt(r, "offset", 0))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
