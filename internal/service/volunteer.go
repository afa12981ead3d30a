package service

import (
	"context"
	"fmt"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository"
)

var ErrVolunteerNotFound = repository.ErrVolunteerNotFound

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error)
	GetByID(ctx context.Context, id uint) (domain.Volunteer, error)
	List(ctx context.Context) ([]domain.VolunteerSummary, error)
	ListEntries(ctx context.Context, volunteerID uint) ([]domain.VolunteerEntry, error)
	Totals(ctx context.Context, volunteerID uint) (hours, donations float64, err error)
	Delete(ctx context.Context, id uint) error
}

type VolunteerService struct {
	repo VolunteerRepository
}

func NewVolunteerService(repo VolunteerRepository) *VolunteerService {
	return &VolunteerService{
		repo: repo,
	}
}

func (s *VolunteerService) CreateVolunteer(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error) {
	created, err := s.repo.Create(ctx, volunteer)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *VolunteerService) ListVolunteers(ctx context.Context) ([]domain.VolunteerSummary, error) {
	summaries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return summaries, nil
}

// GetVolunteerDetail returns a volunteer with their entry history and
// lifetime totals.
func (s *VolunteerService) GetVolunteerDetail(ctx context.Context, id uint) (domain.VolunteerDetail, error) {
	volunteer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.VolunteerDetail{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	entries, err := s.repo.ListEntries(ctx, id)
	if err != nil {
		return domain.VolunteerDetail{}, fmt.Errorf("s.repo.ListEntries -> %w", err)
	}

	hours, donations, err := s.repo.Totals(ctx, id)
	if err != nil {
		return domain.VolunteerDetail{}, fmt.Errorf("s.repo.Totals -> %w", err)
	}

	return domain.VolunteerDetail{
		Volunteer:      volunteer,
		Entries:        entries,
		TotalHours:     hours,
		TotalDonations: donations,
	}, nil
}

// DeleteVolunteer removes the volunteer. Their cost entries survive with
// the snapshotted name and contact, detached from the volunteer record.
func (s *VolunteerService) DeleteVolunteer(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
