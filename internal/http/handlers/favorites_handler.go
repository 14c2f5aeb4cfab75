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

// AddFavorite saves a biodata reference on the user's favorites set.
// Adding the same reference twice is a no-op.
func (h *Handlers) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req domain.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.favoritesService.Add(r.Context(), req.Email, req.BiodataID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Added to favorites"})
}

func (h *Handlers) ListFavorites(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(chi.URLParam(r, "email"))

	biodatas, err := h.favoritesService.List(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, biodatas)
}

// RemoveFavorite requires the caller's authenticated identity to match the
// targeted email.
func (h *Handlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	var req domain.FavoriteRequest
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

	if err := h.favoritesService.Remove(r.Context(), req.Email, req.BiodataID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Removed from favorites"})
}
