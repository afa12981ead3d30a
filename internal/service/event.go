package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository"
)

var (
	ErrEventNotFound        = repository.ErrEventNotFound
	ErrCostEntryNotFound    = repository.ErrCostEntryNotFound
	ErrDistributionNotFound = repository.ErrDistributionNotFound
)

// fallbackCostTypeName is snapshotted onto entries whose cost type is
// missing or has been deleted.
const fallbackCostTypeName = "Other"

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	GetByID(ctx context.Context, id uint) (domain.Event, error)
	GetWithRefs(ctx context.Context, id uint) (domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, event domain.Event) error
	Delete(ctx context.Context, id uint) error
	AddCostEntry(ctx context.Context, entry domain.CostEntry) (domain.CostEntry, error)
	GetCostEntry(ctx context.Context, id uint) (domain.CostEntry, error)
	DeleteCostEntry(ctx context.Context, id uint) error
	ListCostEntries(ctx context.Context, eventID uint) ([]domain.CostEntry, error)
	GroupCostEntries(ctx context.Context, eventID uint, isIncome bool) ([]domain.CostBreakdown, error)
	RecomputeTotals(ctx context.Context, eventID uint) (income, expense float64, err error)
	AddDistribution(ctx context.Context, dist domain.ProfitDistribution) (domain.ProfitDistribution, error)
	GetDistribution(ctx context.Context, id uint) (domain.ProfitDistribution, error)
	DeleteDistribution(ctx context.Context, id uint) error
	ListDistributions(ctx context.Context, eventID uint) ([]domain.ProfitDistribution, error)
}

type CostTypeRepository interface {
	GetCostType(ctx context.Context, id uint) (domain.CostType, error)
}

type EventService struct {
	repo      EventRepository
	costTypes CostTypeRepository
}

func NewEventService(repo EventRepository, costTypes CostTypeRepository) *EventService {
	return &EventService{
		repo:      repo,
		costTypes: costTypes,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.StampPeriod()
	if event.Status == "" {
		event.Status = domain.DefaultStatus
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return events, nil
}

// GetEventDetail loads an event with its entries, breakdowns and
// distributions. Totals are recomputed first, so a detail read always
// self-heals any drift between the stored totals and the entries.
func (s *EventService) GetEventDetail(ctx context.Context, id uint) (domain.EventDetail, error) {
	if _, _, err := s.repo.RecomputeTotals(ctx, id); err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.repo.RecomputeTotals -> %w", err)
	}

	event, err := s.repo.GetWithRefs(ctx, id)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.repo.GetWithRefs -> %w", err)
	}

	entries, err := s.repo.ListCostEntries(ctx, id)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.repo.ListCostEntries -> %w", err)
	}

	expenses, err := s.repo.GroupCostEntries(ctx, id, false)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.repo.GroupCostEntries -> %w", err)
	}

	income, err := s.repo.GroupCostEntries(ctx, id, true)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.repo.GroupCostEntries -> %w", err)
	}

	distributions, err := s.repo.ListDistributions(ctx, id)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.repo.ListDistributions -> %w", err)
	}

	return domain.EventDetail{
		Event:         event,
		CostEntries:   entries,
		Expenses:      expenses,
		Income:        income,
		Distributions: distributions,
	}, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.StampPeriod()
	if event.Status == "" {
		event.Status = domain.DefaultStatus
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	updated, err := s.repo.GetWithRefs(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.GetWithRefs -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// AddCostEntry records one expense or income line item on an event. The
// cost type name is snapshotted onto the entry; rate is nil when the form
// left it blank, in which case the cost type's default rate applies. When
// both hours and rate are positive the amount is derived from them,
// otherwise the submitted amount stands.
func (s *EventService) AddCostEntry(ctx context.Context, entry domain.CostEntry, rate *float64) (domain.CostEntry, error) {
	if _, err := s.repo.GetByID(ctx, entry.EventID); err != nil {
		return domain.CostEntry{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	entry.CostTypeName = fallbackCostTypeName
	if rate != nil {
		entry.RatePerHour = *rate
	}

	if entry.CostTypeID != nil {
		costType, err := s.costTypes.GetCostType(ctx, *entry.CostTypeID)
		switch {
		case err == nil:
			entry.CostTypeName = costType.Name
			if rate == nil {
				entry.RatePerHour = costType.DefaultRate
			}
		case errors.Is(err, repository.ErrCostTypeNotFound):
			entry.CostTypeID = nil
		default:
			return domain.CostEntry{}, fmt.Errorf("s.costTypes.GetCostType -> %w", err)
		}
	}

	entry.DeriveAmount()

	created, err := s.repo.AddCostEntry(ctx, entry)
	if err != nil {
		return domain.CostEntry{}, fmt.Errorf("s.repo.AddCostEntry -> %w", err)
	}

	if _, _, err = s.repo.RecomputeTotals(ctx, entry.EventID); err != nil {
		return domain.CostEntry{}, fmt.Errorf("s.repo.RecomputeTotals -> %w", err)
	}

	return created, nil
}

// DeleteCostEntry removes an entry and recomputes its event's totals.
// It returns the id of the affected event.
func (s *EventService) DeleteCostEntry(ctx context.Context, id uint) (uint, error) {
	entry, err := s.repo.GetCostEntry(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("s.repo.GetCostEntry -> %w", err)
	}

	if err = s.repo.DeleteCostEntry(ctx, id); err != nil {
		return 0, fmt.Errorf("s.repo.DeleteCostEntry -> %w", err)
	}

	if _, _, err = s.repo.RecomputeTotals(ctx, entry.EventID); err != nil {
		return 0, fmt.Errorf("s.repo.RecomputeTotals -> %w", err)
	}

	return entry.EventID, nil
}

// RecomputeEventTotals re-derives an event's totals from its entries.
func (s *EventService) RecomputeEventTotals(ctx context.Context, eventID uint) (income, expense float64, err error) {
	income, expense, err = s.repo.RecomputeTotals(ctx, eventID)
	if err != nil {
		return 0, 0, fmt.Errorf("s.repo.RecomputeTotals -> %w", err)
	}

	return income, expense, nil
}

// AddDistribution allocates a share of the event's net profit. The amount
// is computed from the net profit as it stands right now; later edits to
// the event's totals leave existing distributions untouched.
func (s *EventService) AddDistribution(ctx context.Context, dist domain.ProfitDistribution) (domain.ProfitDistribution, error) {
	event, err := s.repo.GetByID(ctx, dist.EventID)
	if err != nil {
		return domain.ProfitDistribution{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	dist.Amount = event.NetProfit * dist.Percentage / 100

	created, err := s.repo.AddDistribution(ctx, dist)
	if err != nil {
		return domain.ProfitDistribution{}, fmt.Errorf("s.repo.AddDistribution -> %w", err)
	}

	return created, nil
}

// DeleteDistribution removes a distribution and returns the id of the
// event it belonged to.
func (s *EventService) DeleteDistribution(ctx context.Context, id uint) (uint, error) {
	dist, err := s.repo.GetDistribution(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("s.repo.GetDistribution -> %w", err)
	}

	if err = s.repo.DeleteDistribution(ctx, id); err != nil {
		return 0, fmt.Errorf("s.repo.DeleteDistribution -> %w", err)
	}

	return dist.EventID, nil
}
