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

// InitiateContact starts a contact-disclosure request for the authenticated
// requester.
func (h *Handlers) InitiateContact(w http.ResponseWriter, r *http.Request) {
	var req domain.InitiateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if !mw.RequireSelf(w, r, req.Email) {
		return
	}

	biodataID, err := domain.ParseBiodataRef(req.BiodataRef)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	created, err := h.contactService.Initiate(r.Context(), biodataID, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListRequestedContacts returns the authenticated requester's own request
// history.
func (h *Handlers) ListRequestedContacts(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(r.URL.Query().Get("email"))
	if !mw.RequireSelf(w, r, email) {
		return
	}

	requests, err := h.contactService.ListForRequester(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.ContactRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

// ListPendingContacts is the administrator's approval queue.
func (h *Handlers) ListPendingContacts(w http.ResponseWriter, r *http.Request) {
	requests, err := h.contactService.ListPending(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.ContactRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *Handlers) ApproveContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.contactService.Approve(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact request approved"})
}

func (h *Handlers) DiscardContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.contactService.Discard(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact request deleted"})
}
