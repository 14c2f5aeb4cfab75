package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/service"
)

func TestAddFavoriteIdempotent(t *testing.T) {
	users := newMockUserRepo()
	user := users.put(&domain.User{Email: "a@x.com"})
	svc := service.NewFavoritesService(users, newMockBiodataRepo())

	ctx := context.Background()
	if err := svc.Add(ctx, "a@x.com", 42); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := svc.Add(ctx, "a@x.com", 42); err != nil {
		t.Fatalf("duplicate Add: %v", err)
	}

	if len(user.Favorites) != 1 || user.Favorites[0] != 42 {
		t.Errorf("favorites = %v, want [42]", user.Favorites)
	}
}

func TestAddFavoriteUnknownUser(t *testing.T) {
	svc := service.NewFavoritesService(newMockUserRepo(), newMockBiodataRepo())

	err := svc.Add(context.Background(), "nobody@x.com", 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRemoveFavoriteNoOpWhenAbsent(t *testing.T) {
	users := newMockUserRepo()
	user := users.put(&domain.User{Email: "a@x.com", Favorites: []int64{7}})
	svc := service.NewFavoritesService(users, newMockBiodataRepo())

	if err := svc.Remove(context.Background(), "a@x.com", 42); err != nil {
		t.Fatalf("Remove of non-member: %v", err)
	}
	if len(user.Favorites) != 1 || user.Favorites[0] != 7 {
		t.Errorf("favorites = %v, want [7] untouched", user.Favorites)
	}

	if err := svc.Remove(context.Background(), "a@x.com", 7); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(user.Favorites) != 0 {
		t.Errorf("favorites = %v, want empty", user.Favorites)
	}
}

func TestListFavoritesDropsDanglingRefs(t *testing.T) {
	users := newMockUserRepo()
	users.put(&domain.User{Email: "a@x.com", Favorites: []int64{7, 42}})
	biodatas := newMockBiodataRepo()
	biodatas.put(&domain.Biodata{BiodataID: 7, ContactEmail: "owner@x.com"})
	svc := service.NewFavoritesService(users, biodatas)

	got, err := svc.List(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].BiodataID != 7 {
		t.Errorf("got %d biodatas, want only bioData_id 7", len(got))
	}
}

func TestListFavoritesEmpty(t *testing.T) {
	users := newMockUserRepo()
	users.put(&domain.User{Email: "a@x.com"})
	svc := service.NewFavoritesService(users, newMockBiodataRepo())

	got, err := svc.List(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}
