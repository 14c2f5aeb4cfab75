package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	httpmw "github.com/mk-munna/wedmate-matrimony-server-project-12/internal/http/middleware"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/repository"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/auth"
)

const testSecret = "test-secret"

// stubUsers implements only the lookup the guards exercise.
type stubUsers struct {
	repository.UserRepository
	users map[string]*domain.User
}

func (s *stubUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return s.users[email], nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func authedRequest(t *testing.T, email string) *http.Request {
	t.Helper()
	token, err := auth.NewAccessToken(email, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireAuthMissingHeader(t *testing.T) {
	handler := httpmw.RequireAuth(testSecret)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthWrongSecret(t *testing.T) {
	token, err := auth.NewAccessToken("a@x.com", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	handler := httpmw.RequireAuth(testSecret)(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	token, err := auth.NewAccessToken("a@x.com", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	handler := httpmw.RequireAuth(testSecret)(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthAttachesClaims(t *testing.T) {
	var got string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := httpmw.Claims(r); claims != nil {
			got = claims.Email
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := httpmw.RequireAuth(testSecret)(inner)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "a@x.com"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got != "a@x.com" {
		t.Errorf("claims email = %q, want a@x.com", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	users := &stubUsers{users: map[string]*domain.User{
		"admin@x.com":  {Email: "admin@x.com", Role: domain.RoleAdmin},
		"member@x.com": {Email: "member@x.com", Role: domain.RoleMember},
	}}

	tests := []struct {
		name  string
		email string
		want  int
	}{
		{"admin passes", "admin@x.com", http.StatusOK},
		{"member forbidden", "member@x.com", http.StatusForbidden},
		{"absent user forbidden", "ghost@x.com", http.StatusForbidden},
	}

	handler := httpmw.RequireAuth(testSecret)(httpmw.RequireAdmin(users)(okHandler()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, authedRequest(t, tt.email))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireSelf(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpmw.RequireSelf(w, r, "a@x.com") {
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := httpmw.RequireAuth(testSecret)(inner)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "A@X.com"))
	if rec.Code != http.StatusOK {
		t.Errorf("case-insensitive self check: status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "b@x.com"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("other subject: status = %d, want 403", rec.Code)
	}
}
