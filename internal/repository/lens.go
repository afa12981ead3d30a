package repository

import (
	"context"
	"fmt"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository/dao"
)

var (
	ErrLensCategoryNotFound    = dao.ErrLensCategoryNotFound
	ErrLensSubcategoryNotFound = dao.ErrLensSubcategoryNotFound
)

type LensDAO interface {
	ListCategories(ctx context.Context) ([]dao.LensCategory, error)
	InsertCategory(ctx context.Context, category dao.LensCategory) (dao.LensCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
	InsertSubcategory(ctx context.Context, sub dao.LensSubcategory) (dao.LensSubcategory, error)
	DeleteSubcategory(ctx context.Context, id uint) error
}

type LensRepository struct {
	dao LensDAO
}

func NewLensRepository(dao LensDAO) *LensRepository {
	return &LensRepository{
		dao: dao,
	}
}

func (r *LensRepository) subDaoToDomain(s dao.LensSubcategory) domain.LensSubcategory {
	return domain.LensSubcategory{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		SortOrder:   s.SortOrder,
	}
}

func (r *LensRepository) categoryDaoToDomain(c dao.LensCategory) domain.LensCategory {
	category := domain.LensCategory{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		SortOrder:   c.SortOrder,
	}
	for _, sub := range c.Subcategories {
		category.Subcategories = append(category.Subcategories, r.subDaoToDomain(sub))
	}

	return category
}

func (r *LensRepository) ListCategories(ctx context.Context) ([]domain.LensCategory, error) {
	rows, err := r.dao.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCategories -> %w", err)
	}

	categories := make([]domain.LensCategory, len(rows))
	for i, row := range rows {
		categories[i] = r.categoryDaoToDomain(row)
	}

	return categories, nil
}

func (r *LensRepository) CreateCategory(ctx context.Context, category domain.LensCategory) (domain.LensCategory, error) {
	created, err := r.dao.InsertCategory(ctx, dao.LensCategory{
		Name:        category.Name,
		Description: category.Description,
		SortOrder:   category.SortOrder,
	})
	if err != nil {
		return domain.LensCategory{}, fmt.Errorf("r.dao.InsertCategory -> %w", err)
	}

	return r.categoryDaoToDomain(created), nil
}

func (r *LensRepository) DeleteCategory(ctx context.Context, id uint) error {
	if err := r.dao.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCategory -> %w", err)
	}

	return nil
}

func (r *LensRepository) CreateSubcategory(ctx context.Context, sub domain.LensSubcategory) (domain.LensSubcategory, error) {
	created, err := r.dao.InsertSubcategory(ctx, dao.LensSubcategory{
		CategoryID:  sub.CategoryID,
		Name:        sub.Name,
		Description: sub.Description,
		SortOrder:   sub.SortOrder,
	})
	if err != nil {
		return domain.LensSubcategory{}, fmt.Errorf("r.dao.InsertSubcategory -> %w", err)
	}

	return r.subDaoToDomain(created), nil
}

func (r *LensRepository) DeleteSubcategory(ctx context.Context, id uint) error {
	if err := r.dao.DeleteSubcategory(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteSubcategory -> %w", err)
	}

	return nil
}
