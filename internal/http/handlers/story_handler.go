package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/response"
)

func (h *Handlers) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.storyService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if stories == nil {
		stories = []domain.SuccessStory{}
	}
	writeJSON(w, http.StatusOK, stories)
}

// SubmitStory records a couple's success story; one story per submitter.
func (h *Handlers) SubmitStory(w http.ResponseWriter, r *http.Request) {
	var story domain.SuccessStory
	if err := json.NewDecoder(r.Body).Decode(&story); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}
	story.Email = strings.ToLower(strings.TrimSpace(story.Email))

	created, added, err := h.storyService.Submit(r.Context(), &story)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !added {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Already Added Success Story"})
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteStory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.storyService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Success story deleted"})
}
