package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	mw "github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/middleware"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/response"
)

type premiumRequestBody struct {
	Email string `json:"email"`
}

// RequestPremium lets a profile owner ask for the premium tier. Already
// premium and already pending are expected outcomes carried in the body,
// not HTTP failures.
func (h *Handlers) RequestPremium(w http.ResponseWriter, r *http.Request) {
	var body premiumRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.Email == "" {
		response.BadRequest(w, "Email is required")
		return
	}
	if !mw.RequireSelf(w, r, body.Email) {
		return
	}

	result, err := h.premiumService.RequestUpgrade(r.Context(), body.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListPremiumRequests is the administrator's queue of pending tier upgrades.
func (h *Handlers) ListPremiumRequests(w http.ResponseWriter, r *http.Request) {
	biodatas, err := h.premiumService.ListPendingRequests(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if biodatas == nil {
		biodatas = []domain.Biodata{}
	}
	writeJSON(w, http.StatusOK, biodatas)
}

type approvePremiumBody struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ApprovePremium promotes by user store id plus owner email.
func (h *Handlers) ApprovePremium(w http.ResponseWriter, r *http.Request) {
	var body approvePremiumBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.ID == "" || body.Email == "" {
		response.BadRequest(w, "User ID and Email are required")
		return
	}

	if err := h.premiumService.Approve(r.Context(), body.ID, body.Email); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User and Biodata updated successfully.",
	})
}

// ApprovePremiumByEmail promotes keyed solely by the owner email.
func (h *Handlers) ApprovePremiumByEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "email")))
	if email == "" {
		response.BadRequest(w, "Email is required")
		return
	}

	if err := h.premiumService.ApproveByEmail(r.Context(), email); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User and Biodata updated successfully.",
	})
}
