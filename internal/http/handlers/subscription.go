package handlers

import (
	"net/http"

	"smarthire/internal/app"
	"smarthire/internal/http/middleware"
	"smarthire/internal/http/response"
)

type SubscriptionHandler struct {
	subscriptions *app.SubscriptionService
}

func NewSubscriptionHandler(subscriptions *app.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

type subscribeRequest struct {
	PlanID int64 `json:"plan_id"`
}

func (h *SubscriptionHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.subscriptions.ListPlans(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, plans)
}

func (h *SubscriptionHandler) Plan(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	plan, err := h.subscriptions.GetPlan(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, plan)
}

func (h *SubscriptionHandler) Company(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	sub, err := h.subscriptions.CompanySubscription(r.Context(), actor)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req subscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	sub, err := h.subscriptions.Subscribe(r.Context(), actor, req.PlanID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, sub)
}
