package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/mailer"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/repository"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/events"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/logger"
)

// UpgradeResult reports the outcome of a premium upgrade request. An already
// premium or already pending profile is an expected outcome, not an error,
// so it travels in Success/Message rather than as an error value.
type UpgradeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PremiumService drives the tier transitions from none to pending to premium across
// the User and Biodata documents sharing a contact email. The two-document
// approval is not transactional; a failure after a partial update is reported
// and the caller retries, which converges because re-setting the premium
// fields is idempotent.
type PremiumService interface {
	RequestUpgrade(ctx context.Context, email string) (*UpgradeResult, error)
	ListPendingRequests(ctx context.Context) ([]domain.Biodata, error)
	Approve(ctx context.Context, userID, email string) error
	ApproveByEmail(ctx context.Context, email string) error
}

type premiumService struct {
	userRepo    repository.UserRepository
	biodataRepo repository.BiodataRepository
	eventBus    events.Publisher
	mailer      mailer.Service
}

func NewPremiumService(
	userRepo repository.UserRepository,
	biodataRepo repository.BiodataRepository,
	eventBus events.Publisher,
	mailer mailer.Service,
) PremiumService {
	return &premiumService{
		userRepo:    userRepo,
		biodataRepo: biodataRepo,
		eventBus:    eventBus,
		mailer:      mailer,
	}
}

func (s *premiumService) RequestUpgrade(ctx context.Context, email string) (*UpgradeResult, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	biodata, err := s.biodataRepo.FindByContactEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up biodata: %w", err)
	}
	if biodata == nil {
		return nil, fmt.Errorf("%w: no biodata for %s", domain.ErrNotFound, email)
	}

	switch biodata.Tier {
	case domain.TierPremium:
		return &UpgradeResult{Success: false, Message: "You are already a premium member."}, nil
	case domain.TierPending:
		return &UpgradeResult{Success: false, Message: "Already sent premium request."}, nil
	}

	requestedAt := time.Now().UTC()
	modified, err := s.biodataRepo.SetTierPending(ctx, email, requestedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to set pending tier: %w", err)
	}
	if !modified {
		return &UpgradeResult{Success: false, Message: "Failed to send premium request."}, nil
	}

	event := events.PremiumRequestedEvent{Email: email, RequestedAt: requestedAt}
	if err := s.eventBus.Publish(ctx, events.PremiumRequested, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish premium requested event", "error", err, "email", email)
	}

	return &UpgradeResult{Success: true, Message: "Premium request sent successfully."}, nil
}

func (s *premiumService) ListPendingRequests(ctx context.Context) ([]domain.Biodata, error) {
	return s.biodataRepo.ListByTier(ctx, domain.TierPending)
}

// Approve promotes by the user's store id plus the owner email. Both the
// User and the Biodata document must report a modification for the approval
// to count as applied; a partial update is reported as failure and is not
// rolled back.
func (s *premiumService) Approve(ctx context.Context, userID, email string) error {
	if userID == "" || email == "" {
		return fmt.Errorf("%w: user id and email are required", domain.ErrInvalidInput)
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: user id %q", domain.ErrInvalidInput, userID)
	}

	approvedAt := time.Now().UTC()
	userModified, err := s.userRepo.SetTierByID(ctx, oid, domain.TierPremium, approvedAt)
	if err != nil {
		return fmt.Errorf("failed to update user tier: %w", err)
	}
	biodataModified, err := s.biodataRepo.SetTierPremium(ctx, email, approvedAt)
	if err != nil {
		return fmt.Errorf("failed to update biodata tier: %w", err)
	}

	return s.finishApproval(ctx, email, approvedAt, userModified, biodataModified)
}

// ApproveByEmail promotes keyed solely by the owner email. Unlike Approve it
// verifies both documents exist before touching either.
func (s *premiumService) ApproveByEmail(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	biodata, err := s.biodataRepo.FindByContactEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up biodata: %w", err)
	}
	if user == nil || biodata == nil {
		return fmt.Errorf("%w: user or biodata for %s", domain.ErrNotFound, email)
	}

	approvedAt := time.Now().UTC()
	userModified, err := s.userRepo.SetTierByEmail(ctx, email, domain.TierPremium, approvedAt)
	if err != nil {
		return fmt.Errorf("failed to update user tier: %w", err)
	}
	biodataModified, err := s.biodataRepo.SetTierPremium(ctx, email, approvedAt)
	if err != nil {
		return fmt.Errorf("failed to update biodata tier: %w", err)
	}

	return s.finishApproval(ctx, email, approvedAt, userModified, biodataModified)
}

func (s *premiumService) finishApproval(ctx context.Context, email string, approvedAt time.Time, userModified, biodataModified bool) error {
	if !userModified || !biodataModified {
		// No rollback: the applied side stays and a retry converges.
		logger.WarnContext(ctx, "Premium approval partially applied",
			"email", email,
			"user_modified", userModified,
			"biodata_modified", biodataModified,
		)
		return fmt.Errorf("failed to update user and/or biodata for %s", email)
	}

	event := events.PremiumApprovedEvent{Email: email, ApprovedAt: approvedAt}
	if err := s.eventBus.Publish(ctx, events.PremiumApproved, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish premium approved event", "error", err, "email", email)
	}

	name := ""
	if user, err := s.userRepo.FindByEmail(ctx, email); err == nil && user != nil {
		name = user.Name
	}
	if err := s.mailer.SendPremiumApproved(email, name); err != nil {
		logger.WarnContext(ctx, "Failed to send premium approved email", "error", err, "email", email)
	}

	return nil
}
