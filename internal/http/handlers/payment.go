package handlers

import (
	"net/http"

	"smarthire/internal/http/middleware"
	"smarthire/internal/http/response"
)

// PaymentHandler holds the payment provider stubs. Real gateway calls are
// pending provider onboarding; until then the endpoints acknowledge and do
// nothing.
type PaymentHandler struct{}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

type paymentPayload struct {
	Detail string `json:"detail"`
}

func (h *PaymentHandler) Stripe(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		response.Error(w, errUnauthorized())
		return
	}
	response.JSON(w, http.StatusOK, paymentPayload{Detail: "Stripe payment endpoint stub"})
}

func (h *PaymentHandler) Khalti(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		response.Error(w, errUnauthorized())
		return
	}
	response.JSON(w, http.StatusOK, paymentPayload{Detail: "Khalti payment endpoint stub"})
}
