package repository

import (
	"context"
	"fmt"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository/dao"
)

var (
	ErrNameExists        = dao.ErrNameExists
	ErrEventTypeNotFound = dao.ErrEventTypeNotFound
	ErrCostTypeNotFound  = dao.ErrCostTypeNotFound
)

type CatalogDAO interface {
	ListEventTypes(ctx context.Context) ([]dao.EventType, error)
	InsertEventType(ctx context.Context, et dao.EventType) (dao.EventType, error)
	DeleteEventType(ctx context.Context, id uint) error
	ListCostTypes(ctx context.Context) ([]dao.CostType, error)
	GetCostTypeByID(ctx context.Context, id uint) (dao.CostType, error)
	InsertCostType(ctx context.Context, ct dao.CostType) (dao.CostType, error)
	DeleteCostType(ctx context.Context, id uint) error
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) eventTypeDaoToDomain(et dao.EventType) domain.EventType {
	return domain.EventType{
		ID:          et.ID,
		Name:        et.Name,
		Description: et.Description,
	}
}

func (r *CatalogRepository) costTypeDaoToDomain(ct dao.CostType) domain.CostType {
	return domain.CostType{
		ID:          ct.ID,
		Name:        ct.Name,
		DefaultRate: ct.DefaultRate,
		Description: ct.Description,
	}
}

func (r *CatalogRepository) ListEventTypes(ctx context.Context) ([]domain.EventType, error) {
	rows, err := r.dao.ListEventTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListEventTypes -> %w", err)
	}

	types := make([]domain.EventType, len(rows))
	for i, row := range rows {
		types[i] = r.eventTypeDaoToDomain(row)
	}

	return types, nil
}

func (r *CatalogRepository) CreateEventType(ctx context.Context, et domain.EventType) (domain.EventType, error) {
	created, err := r.dao.InsertEventType(ctx, dao.EventType{
		Name:        et.Name,
		Description: et.Description,
	})
	if err != nil {
		return domain.EventType{}, fmt.Errorf("r.dao.InsertEventType -> %w", err)
	}

	return r.eventTypeDaoToDomain(created), nil
}

func (r *CatalogRepository) DeleteEventType(ctx context.Context, id uint) error {
	if err := r.dao.DeleteEventType(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteEventType -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) ListCostTypes(ctx context.Context) ([]domain.CostType, error) {
	rows, err := r.dao.ListCostTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCostTypes -> %w", err)
	}

	types := make([]domain.CostType, len(rows))
	for i, row := range rows {
		types[i] = r.costTypeDaoToDomain(row)
	}

	return types, nil
}

func (r *CatalogRepository) GetCostType(ctx context.Context, id uint) (domain.CostType, error) {
	ct, err := r.dao.GetCostTypeByID(ctx, id)
	if err != nil {
		return domain.CostType{}, fmt.Errorf("r.dao.GetCostTypeByID -> %w", err)
	}

	return r.costTypeDaoToDomain(ct), nil
}

func (r *CatalogRepository) CreateCostType(ctx context.Context, ct domain.CostType) (domain.CostType, error) {
	created, err := r.dao.InsertCostType(ctx, dao.CostType{
		Name:        ct.Name,
		DefaultRate: ct.DefaultRate,
		Description: ct.Description,
	})
	if err != nil {
		return domain.CostType{}, fmt.Errorf("r.dao.InsertCostType -> %w", err)
	}

	return r.costTypeDaoToDomain(created), nil
}

func (r *CatalogRepository) DeleteCostType(ctx context.Context, id uint) error {
	if err := r.dao.DeleteCostType(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCostType -> %w", err)
	}

	return nil
}
