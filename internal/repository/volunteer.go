package repository

import (
	"context"
	"fmt"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository/dao"
)

var ErrVolunteerNotFound = dao.ErrVolunteerNotFound

type VolunteerDAO interface {
	Insert(ctx context.Context, volunteer dao.Volunteer) (dao.Volunteer, error)
	GetByID(ctx context.Context, id uint) (dao.Volunteer, error)
	List(ctx context.Context) ([]dao.VolunteerRow, error)
	ListEntries(ctx context.Context, volunteerID uint) ([]dao.VolunteerEntryRow, error)
	Totals(ctx context.Context, volunteerID uint) (dao.VolunteerTotals, error)
	Delete(ctx context.Context, id uint) error
}

type VolunteerRepository struct {
	dao VolunteerDAO
}

func NewVolunteerRepository(dao VolunteerDAO) *VolunteerRepository {
	return &VolunteerRepository{
		dao: dao,
	}
}

func (r *VolunteerRepository) domainToDao(v domain.Volunteer) dao.Volunteer {
	return dao.Volunteer{
		ID:        v.ID,
		Name:      v.Name,
		Phone:     v.Phone,
		Email:     v.Email,
		Address:   v.Address,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}

func (r *VolunteerRepository) daoToDomain(v dao.Volunteer) domain.Volunteer {
	return domain.Volunteer{
		ID:        v.ID,
		Name:      v.Name,
		Phone:     v.Phone,
		Email:     v.Email,
		Address:   v.Address,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}

func (r *VolunteerRepository) Create(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(volunteer))
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VolunteerRepository) GetByID(ctx context.Context, id uint) (domain.Volunteer, error) {
	volunteer, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("r.dao.GetByID -> %w", err)
	}

	return r.daoToDomain(volunteer), nil
}

func (r *VolunteerRepository) List(ctx context.Context) ([]domain.VolunteerSummary, error) {
	rows, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	summaries := make([]domain.VolunteerSummary, len(rows))
	for i, row := range rows {
		summaries[i] = domain.VolunteerSummary{
			Volunteer:      r.daoToDomain(row.Volunteer),
			TotalHours:     row.TotalHours,
			TotalDonations: row.TotalDonations,
			EventCount:     row.EventCount,
		}
	}

	return summaries, nil
}

func (r *VolunteerRepository) ListEntries(ctx context.Context, volunteerID uint) ([]domain.VolunteerEntry, error) {
	rows, err := r.dao.ListEntries(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListEntries -> %w", err)
	}

	entries := make([]domain.VolunteerEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.VolunteerEntry{
			CostEntry: domain.CostEntry{
				ID:               row.CostEntry.ID,
				EventID:          row.CostEntry.EventID,
				CostTypeID:       row.CostEntry.CostTypeID,
				CostTypeName:     row.CostEntry.CostTypeName,
				Description:      row.CostEntry.Description,
				Hours:            row.CostEntry.Hours,
				RatePerHour:      row.CostEntry.RatePerHour,
				Amount:           row.CostEntry.Amount,
				VolunteerID:      row.CostEntry.VolunteerID,
				VolunteerName:    row.CostEntry.VolunteerName,
				VolunteerContact: row.CostEntry.VolunteerContact,
				IsIncome:         row.CostEntry.IsIncome,
				CreatedAt:        row.CostEntry.CreatedAt,
			},
			EventName: row.EventName,
			EventDate: row.EventDate,
		}
	}

	return entries, nil
}

func (r *VolunteerRepository) Totals(ctx context.Context, volunteerID uint) (hours, donations float64, err error) {
	totals, err := r.dao.Totals(ctx, volunteerID)
	if err != nil {
		return 0, 0, fmt.Errorf("r.dao.Totals -> %w", err)
	}

	return totals.TotalHours, totals.TotalDonations, nil
}

func (r *VolunteerRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
