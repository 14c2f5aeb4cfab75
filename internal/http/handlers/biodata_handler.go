package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/response"
)

// ListBiodatas is the public browse endpoint with optional age range, type
// and division filters.
func (h *Handlers) ListBiodatas(w http.ResponseWriter, r *http.Request) {
	filter := domain.BiodataFilter{
		AgeMin:   queryInt(r, "ageMin", 0),
		AgeMax:   queryInt(r, "ageMax", 0),
		Type:     r.URL.Query().Get("bioDataType"),
		Division: r.URL.Query().Get("division"),
		Limit:    queryInt64(r, "limit", 9),
		Offset:   queryInt64(r, "offset", 0),
	}

	page, err := h.biodataService.Browse(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handlers) ListPremiumBiodatas(w http.ResponseWriter, r *http.Request) {
	limit := queryInt64(r, "limit", 6)
	offset := queryInt64(r, "offset", 0)

	page, err := h.biodataService.BrowsePremium(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handlers) ListRelatedBiodatas(w http.ResponseWriter, r *http.Request) {
	biodataType := r.URL.Query().Get("gender")
	excludeID := queryInt64(r, "excludeid", 0)
	limit := queryInt64(r, "limit", 3)

	biodatas, err := h.biodataService.Related(r.Context(), biodataType, excludeID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if biodatas == nil {
		biodatas = []domain.Biodata{}
	}
	writeJSON(w, http.StatusOK, biodatas)
}

func (h *Handlers) GetBiodata(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	biodata, err := h.biodataService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, biodata)
}

func (h *Handlers) GetOwnBiodata(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(r.URL.Query().Get("email"))

	biodata, err := h.biodataService.GetByOwnerEmail(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, biodata)
}

// LastBiodataID reports the highest assigned external id so the client can
// assign the next one.
func (h *Handlers) LastBiodataID(w http.ResponseWriter, r *http.Request) {
	last, err := h.biodataService.LastBiodataID(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"bioData_id": last})
}

func (h *Handlers) CreateBiodata(w http.ResponseWriter, r *http.Request) {
	var biodata domain.Biodata
	if err := json.NewDecoder(r.Body).Decode(&biodata); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}
	biodata.ContactEmail = strings.ToLower(strings.TrimSpace(biodata.ContactEmail))

	created, err := h.biodataService.Create(r.Context(), &biodata)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateBiodata applies an owner's field edits, keyed by contact email.
func (h *Handlers) UpdateBiodata(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(chi.URLParam(r, "email"))

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	if err := h.biodataService.UpdateByOwnerEmail(r.Context(), email, fields); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Biodata updated successfully"})
}
