package service

import (
	"context"
	"fmt"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository"
)

var (
	ErrNameExists        = repository.ErrNameExists
	ErrEventTypeNotFound = repository.ErrEventTypeNotFound
	ErrCostTypeNotFound  = repository.ErrCostTypeNotFound
)

type CatalogRepository interface {
	ListEventTypes(ctx context.Context) ([]domain.EventType, error)
	CreateEventType(ctx context.Context, et domain.EventType) (domain.EventType, error)
	DeleteEventType(ctx context.Context, id uint) error
	ListCostTypes(ctx context.Context) ([]domain.CostType, error)
	CreateCostType(ctx context.Context, ct domain.CostType) (domain.CostType, error)
	DeleteCostType(ctx context.Context, id uint) error
}

// CatalogService manages the event-type and cost-type lookup tables.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) ListEventTypes(ctx context.Context) ([]domain.EventType, error) {
	types, err := s.repo.ListEventTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListEventTypes -> %w", err)
	}

	return types, nil
}

func (s *CatalogService) CreateEventType(ctx context.Context, et domain.EventType) (domain.EventType, error) {
	created, err := s.repo.CreateEventType(ctx, et)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("s.repo.CreateEventType -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) DeleteEventType(ctx context.Context, id uint) error {
	if err := s.repo.DeleteEventType(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteEventType -> %w", err)
	}

	return nil
}

func (s *CatalogService) ListCostTypes(ctx context.Context) ([]domain.CostType, error) {
	types, err := s.repo.ListCostTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCostTypes -> %w", err)
	}

	return types, nil
}

func (s *CatalogService) CreateCostType(ctx context.Context, ct domain.CostType) (domain.CostType, error) {
	created, err := s.repo.CreateCostType(ctx, ct)
	if err != nil {
		return domain.CostType{}, fmt.Errorf("s.repo.CreateCostType -> %w", err)
	}

	return created, nil
}

// DeleteCostType removes a cost type. Entries that reference it keep the
// snapshotted name, so history is unaffected.
func (s *CatalogService) DeleteCostType(ctx context.Context, id uint) error {
	if err := s.repo.DeleteCostType(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteCostType -> %w", err)
	}

	return nil
}
