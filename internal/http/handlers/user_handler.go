package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	mw "github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/middleware"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/response"
)

// CreateUser registers a user on first sign-in. An existing email is not an
// error; the response says which case applied.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	user, created, err := h.userService.EnsureUser(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":    "User already exists",
			"insertedId": nil,
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "New User",
		"insertedId": user.ID.Hex(),
	})
}

// CheckUserExists probes whether an email is already registered so the
// client can pick between the sign-in and sign-up flows.
func (h *Handlers) CheckUserExists(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("email")))
	if email == "" {
		response.BadRequest(w, "Email is required")
		return
	}

	user, err := h.userService.FindByEmail(r.Context(), email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		writeServiceError(w, err)
		return
	}

	if user != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":    "User already exists",
			"insertedId": nil,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "New User",
		"insertedId": 1,
	})
}

func (h *Handlers) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(chi.URLParam(r, "email"))

	user, err := h.userService.FindByEmail(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// CheckAdmin answers "is this email an admin"; only the subject may ask
// about themselves.
func (h *Handlers) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !mw.RequireSelf(w, r, email) {
		return
	}

	isAdmin, err := h.userService.IsAdmin(r.Context(), strings.ToLower(email))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"admin": isAdmin})
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handlers) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.userService.PromoteToAdmin(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User promoted to admin"})
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.userService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
