package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/repository"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/events"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/logger"
)

type UserService interface {
	EnsureUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	PromoteToAdmin(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	eventBus events.Publisher
}

func NewUserService(userRepo repository.UserRepository, eventBus events.Publisher) UserService {
	return &userService{
		userRepo: userRepo,
		eventBus: eventBus,
	}
}

// EnsureUser creates the user on first sign-in. The second return value is
// false when the email already exists, in which case the stored document is
// returned unchanged.
func (s *userService) EnsureUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, bool, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	user := &domain.User{
		Email:     req.Email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		Role:      domain.RoleMember,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	event := events.UserCreatedEvent{Email: created.Email, CreatedAt: created.CreatedAt}
	if err := s.eventBus.Publish(ctx, events.UserCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish user created event", "error", err, "email", created.Email)
	}

	return created, true, nil
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
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
	return user, nil
}

// IsAdmin reports whether a user exists and holds the admin role. An absent
// user is simply not an admin here, not an error.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return user.IsAdmin(), nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) PromoteToAdmin(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: user id %q", domain.ErrInvalidInput, userID)
	}

	modified, err := s.userRepo.SetRole(ctx, oid, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if !modified {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}

	event := events.UserPromotedEvent{UserID: userID, PromotedAt: time.Now().UTC()}
	if err := s.eventBus.Publish(ctx, events.UserPromoted, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish user promoted event", "error", err, "user_id", userID)
	}

	return nil
}

func (s *userService) Delete(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: user id %q", domain.ErrInvalidInput, userID)
	}

	deleted, err := s.userRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	return nil
}
