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

// ContactService is the contact-disclosure workflow. A request starts
// Pending and either becomes Approved or is deleted; there is no path out of
// Approved other than Discard.
type ContactService interface {
	Initiate(ctx context.Context, biodataID int64, requesterEmail string) (*domain.ContactRequest, error)
	ListForRequester(ctx context.Context, email string) ([]domain.ContactRequest, error)
	ListPending(ctx context.Context) ([]domain.ContactRequest, error)
	Approve(ctx context.Context, id string) error
	Discard(ctx context.Context, id string) error
}

type contactService struct {
	contactRepo repository.ContactRepository
	biodataRepo repository.BiodataRepository
	eventBus    events.Publisher
	mailer      mailer.Service
}

func NewContactService(
	contactRepo repository.ContactRepository,
	biodataRepo repository.BiodataRepository,
	eventBus events.Publisher,
	mailer mailer.Service,
) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		biodataRepo: biodataRepo,
		eventBus:    eventBus,
		mailer:      mailer,
	}
}

func (s *contactService) Initiate(ctx context.Context, biodataID int64, requesterEmail string) (*domain.ContactRequest, error) {
	if biodataID <= 0 || requesterEmail == "" {
		return nil, fmt.Errorf("%w: biodata id and email are required", domain.ErrInvalidInput)
	}

	biodata, err := s.biodataRepo.FindByBiodataID(ctx, biodataID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up biodata: %w", err)
	}
	if biodata == nil {
		return nil, fmt.Errorf("%w: biodata %d", domain.ErrNotFound, biodataID)
	}

	// Snapshot the disclosure-relevant fields. Later edits to the biodata
	// must not change what an existing request shows.
	req := &domain.ContactRequest{
		BiodataID:         biodata.BiodataID,
		Name:              biodata.Name,
		ContactEmail:      biodata.ContactEmail,
		ContactPhone:      biodata.MobileNumber,
		Image:             biodata.ProfileImage,
		CheckoutEmail:     requesterEmail,
		CheckoutCreatedAt: time.Now().UTC(),
		Status:            domain.ContactPending,
	}

	created, err := s.contactRepo.Insert(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact request: %w", err)
	}

	event := events.ContactRequestedEvent{
		RequestID:     created.ID.Hex(),
		BiodataID:     created.BiodataID,
		CheckoutEmail: created.CheckoutEmail,
		RequestedAt:   created.CheckoutCreatedAt,
	}
	if err := s.eventBus.Publish(ctx, events.ContactRequested, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish contact requested event", "error", err, "request_id", created.ID.Hex())
	}

	return created, nil
}

func (s *contactService) ListForRequester(ctx context.Context, email string) ([]domain.ContactRequest, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	return s.contactRepo.ListByCheckoutEmail(ctx, email)
}

func (s *contactService) ListPending(ctx context.Context) ([]domain.ContactRequest, error) {
	return s.contactRepo.ListByStatus(ctx, domain.ContactPending)
}

func (s *contactService) Approve(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: contact request id %q", domain.ErrInvalidInput, id)
	}

	matched, err := s.contactRepo.SetStatus(ctx, oid, domain.ContactApproved)
	if err != nil {
		return fmt.Errorf("failed to approve contact request: %w", err)
	}
	if !matched {
		return fmt.Errorf("%w: contact request %s", domain.ErrNotFound, id)
	}

	event := events.ContactApprovedEvent{RequestID: id, ApprovedAt: time.Now().UTC()}
	if err := s.eventBus.Publish(ctx, events.ContactApproved, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish contact approved event", "error", err, "request_id", id)
	}

	if req, err := s.contactRepo.FindByID(ctx, oid); err == nil && req != nil {
		if err := s.mailer.SendContactApproved(req.CheckoutEmail, req.BiodataID); err != nil {
			logger.WarnContext(ctx, "Failed to send contact approved email", "error", err, "request_id", id)
		}
	}

	return nil
}

// Discard deletes a request outright. It serves both rejecting a pending
// request and archiving an approved one; the persisted trail does not record
// which intent applied.
func (s *contactService) Discard(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: contact request id %q", domain.ErrInvalidInput, id)
	}

	deleted, err := s.contactRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to delete contact request: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: contact request %s", domain.ErrNotFound, id)
	}

	event := events.ContactDiscardedEvent{RequestID: id, DiscardedAt: time.Now().UTC()}
	if err := s.eventBus.Publish(ctx, events.ContactDiscarded, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish contact discarded event", "error", err, "request_id", id)
	}

	return nil
}
