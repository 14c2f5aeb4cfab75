package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/repository"
)

type StoryService interface {
	List(ctx context.Context) ([]domain.SuccessStory, error)
	Submit(ctx context.Context, story *domain.SuccessStory) (*domain.SuccessStory, bool, error)
	Delete(ctx context.Context, id string) error
}

type storyService struct {
	storyRepo repository.StoryRepository
}

func NewStoryService(storyRepo repository.StoryRepository) StoryService {
	return &storyService{storyRepo: storyRepo}
}

func (s *storyService) List(ctx context.Context) ([]domain.SuccessStory, error) {
	return s.storyRepo.List(ctx)
}

// Submit stores a story unless one already exists for the submitter email.
// The second return value is false for a duplicate, which is an expected
// outcome rather than an error.
func (s *storyService) Submit(ctx context.Context, story *domain.SuccessStory) (*domain.SuccessStory, bool, error) {
	if story.Email == "" {
		return nil, false, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	existing, err := s.storyRepo.FindByEmail(ctx, story.Email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check existing story: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	created, err := s.storyRepo.Insert(ctx, story)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create story: %w", err)
	}
	return created, true, nil
}

func (s *storyService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: story id %q", domain.ErrInvalidInput, id)
	}

	deleted, err := s.storyRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: story %s", domain.ErrNotFound, id)
	}
	return nil
}
