package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/handlers"
	httpmw "github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/middleware"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/service"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/auth"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/config"
)

const testSecret = "test-secret"

type favoritesCall struct {
	email     string
	biodataID int64
}

type stubFavorites struct {
	removed []favoritesCall
	addErr  error
}

func (s *stubFavorites) Add(_ context.Context, email string, biodataID int64) error {
	return s.addErr
}

func (s *stubFavorites) Remove(_ context.Context, email string, biodataID int64) error {
	s.removed = append(s.removed, favoritesCall{email: email, biodataID: biodataID})
	return nil
}

func (s *stubFavorites) List(_ context.Context, _ string) ([]domain.Biodata, error) {
	return []domain.Biodata{}, nil
}

func newFavoritesHandler(favorites service.FavoritesService) http.Handler {
	h := handlers.New(nil, nil, nil, nil, favorites, nil, nil, &config.Config{})
	return httpmw.RequireAuth(testSecret)(http.HandlerFunc(h.RemoveFavorite))
}

func bearerRequest(t *testing.T, email, body string) *http.Request {
	t.Helper()
	token, err := auth.NewAccessToken(email, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodDelete, "/favorites", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRemoveFavoriteAsOwner(t *testing.T) {
	favorites := &stubFavorites{}
	handler := newFavoritesHandler(favorites)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, "a@x.com", `{"email":"a@x.com","bioDataId":42}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if len(favorites.removed) != 1 || favorites.removed[0] != (favoritesCall{email: "a@x.com", biodataID: 42}) {
		t.Errorf("removed = %v, want one call for a@x.com/42", favorites.removed)
	}
}

func TestRemoveFavoriteForOtherUserForbidden(t *testing.T) {
	favorites := &stubFavorites{}
	handler := newFavoritesHandler(favorites)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, "b@x.com", `{"email":"a@x.com","bioDataId":42}`))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if len(favorites.removed) != 0 {
		t.Errorf("removed = %v, want no calls", favorites.removed)
	}
}

func TestRemoveFavoriteWithoutToken(t *testing.T) {
	handler := newFavoritesHandler(&stubFavorites{})

	req := httptest.NewRequest(http.MethodDelete, "/favorites", strings.NewReader(`{"email":"a@x.com","bioDataId":42}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAddFavoriteMapsNotFound(t *testing.T) {
	favorites := &stubFavorites{addErr: fmt.Errorf("%w: user a@x.com", domain.ErrNotFound)}
	h := handlers.New(nil, nil, nil, nil, favorites, nil, nil, &config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/favorites", strings.NewReader(`{"email":"a@x.com","bioDataId":42}`))
	rec := httptest.NewRecorder()
	h.AddFavorite(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
