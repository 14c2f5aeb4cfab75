package service

import (
	"context"
	"fmt"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/repository"
)

// FavoritesService manages a user's saved biodata references as a set:
// duplicate adds and removals of non-members are no-ops, not errors.
type FavoritesService interface {
	Add(ctx context.Context, email string, biodataID int64) error
	Remove(ctx context.Context, email string, biodataID int64) error
	List(ctx context.Context, email string) ([]domain.Biodata, error)
}

type favoritesService struct {
	userRepo    repository.UserRepository
	biodataRepo repository.BiodataRepository
}

func NewFavoritesService(userRepo repository.UserRepository, biodataRepo repository.BiodataRepository) FavoritesService {
	return &favoritesService{
		userRepo:    userRepo,
		biodataRepo: biodataRepo,
	}
}

func (s *favoritesService) Add(ctx context.Context, email string, biodataID int64) error {
	if email == "" || biodataID <= 0 {
		return fmt.Errorf("%w: email and biodata id are required", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, email)
	}

	if _, err := s.userRepo.AddFavorite(ctx, email, biodataID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (s *favoritesService) Remove(ctx context.Context, email string, biodataID int64) error {
	if email == "" || biodataID <= 0 {
		return fmt.Errorf("%w: email and biodata id are required", domain.ErrInvalidInput)
	}

	if _, err := s.userRepo.RemoveFavorite(ctx, email, biodataID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// List resolves each saved reference to its biodata document; references
// that no longer resolve are silently dropped.
func (s *favoritesService) List(ctx context.Context, email string) ([]domain.Biodata, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, email)
	}

	if len(user.Favorites) == 0 {
		return []domain.Biodata{}, nil
	}

	biodatas, err := s.biodataRepo.ListByBiodataIDs(ctx, user.Favorites)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve favorites: %w", err)
	}
	if biodatas == nil {
		biodatas = []domain.Biodata{}
	}
	return biodatas, nil
}
