package service

import (
	"context"
	"fmt"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository"
)

var (
	ErrLensCategoryNotFound    = repository.ErrLensCategoryNotFound
	ErrLensSubcategoryNotFound = repository.ErrLensSubcategoryNotFound
)

type LensRepository interface {
	ListCategories(ctx context.Context) ([]domain.LensCategory, error)
	CreateCategory(ctx context.Context, category domain.LensCategory) (domain.LensCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
	CreateSubcategory(ctx context.Context, sub domain.LensSubcategory) (domain.LensSubcategory, error)
	DeleteSubcategory(ctx context.Context, id uint) error
}

// LensService manages the two-level classification taxonomy events are
// tagged with.
type LensService struct {
	repo LensRepository
}

func NewLensService(repo LensRepository) *LensService {
	return &LensService{
		repo: repo,
	}
}

func (s *LensService) ListCategories(ctx context.Context) ([]domain.LensCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCategories -> %w", err)
	}

	return categories, nil
}

func (s *LensService) CreateCategory(ctx context.Context, category domain.LensCategory) (domain.LensCategory, error) {
	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		return domain.LensCategory{}, fmt.Errorf("s.repo.CreateCategory -> %w", err)
	}

	return created, nil
}

// DeleteCategory removes a category and its subcategories. Events keep
// their category ids; readers treat the dangling reference as untagged.
func (s *LensService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteCategory -> %w", err)
	}

	return nil
}

func (s *LensService) CreateSubcategory(ctx context.Context, sub domain.LensSubcategory) (domain.LensSubcategory, error) {
	created, err := s.repo.CreateSubcategory(ctx, sub)
	if err != nil {
		return domain.LensSubcategory{}, fmt.Errorf("s.repo.CreateSubcategory -> %w", err)
	}

	return created, nil
}

func (s *LensService) DeleteSubcategory(ctx context.Context, id uint) error {
	if err := s.repo.DeleteSubcategory(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteSubcategory -> %w", err)
	}

	return nil
}
