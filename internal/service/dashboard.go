package service

import (
	"context"
	"fmt"
	"time"

	"github.com/communitylens/ledger/internal/domain"
)

// recentEventLimit caps the landing-page event list.
const recentEventLimit = 5

type DashboardEventRepository interface {
	Summarize(ctx context.Context, start, end time.Time, orgID *uint) (domain.Summary, error)
	ListRecent(ctx context.Context, start, end time.Time, orgID *uint, limit int) ([]domain.Event, error)
	DistinctYears(ctx context.Context) ([]int, error)
}

type DashboardOrgRepository interface {
	List(ctx context.Context) ([]domain.Organization, error)
}

type DashboardService struct {
	events DashboardEventRepository
	orgs   DashboardOrgRepository
}

func NewDashboardService(events DashboardEventRepository, orgs DashboardOrgRepository) *DashboardService {
	return &DashboardService{
		events: events,
		orgs:   orgs,
	}
}

// Overview assembles the landing-page payload for one reporting period.
// An unrecognized or empty period falls back to to_date.
func (s *DashboardService) Overview(ctx context.Context, period string, year, quarter int, orgID *uint) (domain.Dashboard, error) {
	if period != domain.PeriodQuarterly && period != domain.PeriodAnnual {
		period = domain.PeriodToDate
	}

	start, end := domain.DateRangeFor(period, year, quarter)

	summary, err := s.events.Summarize(ctx, start, end, orgID)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.events.Summarize -> %w", err)
	}

	recent, err := s.events.ListRecent(ctx, start, end, orgID, recentEventLimit)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.events.ListRecent -> %w", err)
	}

	orgs, err := s.orgs.List(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.orgs.List -> %w", err)
	}

	years, err := s.events.DistinctYears(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.events.DistinctYears -> %w", err)
	}

	return domain.Dashboard{
		Period:        period,
		Year:          year,
		Quarter:       quarter,
		Summary:       summary,
		NetProfit:     summary.Income - summary.Expense,
		RecentEvents:  recent,
		Organizations: orgs,
		Years:         years,
	}, nil
}
