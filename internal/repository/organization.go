package repository

import (
	"context"
	"fmt"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository/dao"
)

var ErrOrganizationNotFound = dao.ErrOrganizationNotFound

type OrganizationDAO interface {
	Insert(ctx context.Context, org dao.Organization) (dao.Organization, error)
	List(ctx context.Context) ([]dao.Organization, error)
	Delete(ctx context.Context, id uint) error
}

type OrganizationRepository struct {
	dao OrganizationDAO
}

func NewOrganizationRepository(dao OrganizationDAO) *OrganizationRepository {
	return &OrganizationRepository{
		dao: dao,
	}
}

func (r *OrganizationRepository) domainToDao(o domain.Organization) dao.Organization {
	return dao.Organization{
		ID:           o.ID,
		Name:         o.Name,
		Type:         o.Type,
		Size:         o.Size,
		ContactName:  o.ContactName,
		ContactPhone: o.ContactPhone,
		ContactEmail: o.ContactEmail,
		CreatedAt:    o.CreatedAt,
	}
}

func (r *OrganizationRepository) daoToDomain(o dao.Organization) domain.Organization {
	return domain.Organization{
		ID:           o.ID,
		Name:         o.Name,
		Type:         o.Type,
		Size:         o.Size,
		ContactName:  o.ContactName,
		ContactPhone: o.ContactPhone,
		ContactEmail: o.ContactEmail,
		CreatedAt:    o.CreatedAt,
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(org))
	if err != nil {
		return domain.Organization{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	rows, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	orgs := make([]domain.Organization, len(rows))
	for i, row := range rows {
		orgs[i] = r.daoToDomain(row)
	}

	return orgs, nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
