package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/response"
)

type createPaymentIntentRequest struct {
	Amount int64 `json:"amount"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent asks Stripe for a payment intent and hands the client
// secret back for the card flow. The call is retryable by the caller; no
// record of the intent is kept here.
func (h *Handlers) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createPaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	secret, err := h.paymentService.CreateIntent(r.Context(), req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createPaymentIntentResponse{ClientSecret: secret})
}
