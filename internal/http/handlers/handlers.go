package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/response"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/service"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/config"
)

type Handlers struct {
	userService      service.UserService
	biodataService   service.BiodataService
	contactService   service.ContactService
	premiumService   service.PremiumService
	favoritesService service.FavoritesService
	storyService     service.StoryService
	paymentService   service.PaymentService
	config           *config.Config
}

func New(
	userService service.UserService,
	biodataService service.BiodataService,
	contactService service.ContactService,
	premiumService service.PremiumService,
	favoritesService service.FavoritesService,
	storyService service.StoryService,
	paymentService service.PaymentService,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		userService:      userService,
		biodataService:   biodataService,
		contactService:   contactService,
		premiumService:   premiumService,
		favoritesService: favoritesService,
		storyService:     storyService,
		paymentService:   paymentService,
		config:           cfg,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is a 500 with a generic message; internal detail
// stays in the logs.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		response.Forbidden(w, err.Error())
	default:
		response.InternalError(w, "Internal server error")
	}
}

func queryInt64(r *http.Request, key string, fallback int64) int64 {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
