package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/repository"
)

// BiodataPage is a browse result with the total match count for pagination.
type BiodataPage struct {
	Biodatas   []domain.Biodata `json:"biodatas"`
	TotalCount int64            `json:"totalCount"`
}

type BiodataService interface {
	Browse(ctx context.Context, filter domain.BiodataFilter) (*BiodataPage, error)
	BrowsePremium(ctx context.Context, limit, offset int64) (*BiodataPage, error)
	Related(ctx context.Context, biodataType string, excludeID, limit int64) ([]domain.Biodata, error)
	GetByID(ctx context.Context, id string) (*domain.Biodata, error)
	GetByOwnerEmail(ctx context.Context, email string) (*domain.Biodata, error)
	LastBiodataID(ctx context.Context) (int64, error)
	Create(ctx context.Context, biodata *domain.Biodata) (*domain.Biodata, error)
	UpdateByOwnerEmail(ctx context.Context, email string, fields bson.M) error
}

type biodataService struct {
	biodataRepo repository.BiodataRepository
}

func NewBiodataService(biodataRepo repository.BiodataRepository) BiodataService {
	return &biodataService{biodataRepo: biodataRepo}
}

func (s *biodataService) Browse(ctx context.Context, filter domain.BiodataFilter) (*BiodataPage, error) {
	biodatas, total, err := s.biodataRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list biodatas: %w", err)
	}
	if biodatas == nil {
		biodatas = []domain.Biodata{}
	}
	return &BiodataPage{Biodatas: biodatas, TotalCount: total}, nil
}

func (s *biodataService) BrowsePremium(ctx context.Context, limit, offset int64) (*BiodataPage, error) {
	biodatas, total, err := s.biodataRepo.ListPremium(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list premium biodatas: %w", err)
	}
	if biodatas == nil {
		biodatas = []domain.Biodata{}
	}
	return &BiodataPage{Biodatas: biodatas, TotalCount: total}, nil
}

func (s *biodataService) Related(ctx context.Context, biodataType string, excludeID, limit int64) ([]domain.Biodata, error) {
	if biodataType == "" {
		return nil, fmt.Errorf("%w: biodata type is required", domain.ErrInvalidInput)
	}
	return s.biodataRepo.ListRelated(ctx, biodataType, excludeID, limit)
}

func (s *biodataService) GetByID(ctx context.Context, id string) (*domain.Biodata, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: biodata id %q", domain.ErrInvalidInput, id)
	}
	biodata, err := s.biodataRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to look up biodata: %w", err)
	}
	if biodata == nil {
		return nil, fmt.Errorf("%w: biodata %s", domain.ErrNotFound, id)
	}
	return biodata, nil
}

func (s *biodataService) GetByOwnerEmail(ctx context.Context, email string) (*domain.Biodata, error) {
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
	return biodata, nil
}

func (s *biodataService) LastBiodataID(ctx context.Context) (int64, error) {
	return s.biodataRepo.LastBiodataID(ctx)
}

func (s *biodataService) Create(ctx context.Context, biodata *domain.Biodata) (*domain.Biodata, error) {
	if biodata.BiodataID <= 0 {
		return nil, fmt.Errorf("%w: bioData_id is required", domain.ErrInvalidInput)
	}
	if biodata.ContactEmail == "" {
		return nil, fmt.Errorf("%w: contact_email is required", domain.ErrInvalidInput)
	}
	return s.biodataRepo.Insert(ctx, biodata)
}

func (s *biodataService) UpdateByOwnerEmail(ctx context.Context, email string, fields bson.M) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	// The external id, tier and approval stamps are workflow-owned; owner
	// edits must not touch them.
	delete(fields, "_id")
	delete(fields, "bioData_id")
	delete(fields, "tire")
	delete(fields, "requestedAt")
	delete(fields, "approvedAt")
	if len(fields) == 0 {
		return fmt.Errorf("%w: no updatable fields", domain.ErrInvalidInput)
	}

	modified, err := s.biodataRepo.UpdateByContactEmail(ctx, email, fields)
	if err != nil {
		return fmt.Errorf("failed to update biodata: %w", err)
	}
	if !modified {
		return fmt.Errorf("%w: no biodata for %s", domain.ErrNotFound, email)
	}
	return nil
}
