package service

import (
	"context"
	"fmt"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository"
)

var ErrOrganizationNotFound = repository.ErrOrganizationNotFound

type OrganizationRepository interface {
	Create(ctx context.Context, org domain.Organization) (domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
	Delete(ctx context.Context, id uint) error
}

type OrganizationService struct {
	repo OrganizationRepository
}

func NewOrganizationService(repo OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		repo: repo,
	}
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	created, err := s.repo.Create(ctx, org)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return orgs, nil
}

// DeleteOrganization removes the organization. Events and distributions
// keep their organization ids; readers treat the dangling reference as
// "no organization".
func (s *OrganizationService) DeleteOrganization(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
