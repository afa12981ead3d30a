package service

import (
	"context"
	"fmt"

	"github.com/communitylens/ledger/internal/domain"
)

type ReportRepository interface {
	DistinctQuarters(ctx context.Context) ([]string, error)
	DistinctYears(ctx context.Context) ([]int, error)
	ListByScope(ctx context.Context, scope domain.ReportScope) ([]domain.Event, error)
	TotalsByScope(ctx context.Context, scope domain.ReportScope) (income, expense, profit float64, err error)
	CountByScope(ctx context.Context, scope domain.ReportScope) (int, error)
	SumParticipantsByScope(ctx context.Context, scope domain.ReportScope) (int, error)
	CountByTypeByScope(ctx context.Context, scope domain.ReportScope) ([]domain.TypeBreakdown, error)
	CostBreakdownByScope(ctx context.Context, scope domain.ReportScope) ([]domain.CostBreakdown, error)
}

type ReportService struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{
		repo: repo,
	}
}

// Meta returns the quarters and years that can be reported on.
func (s *ReportService) Meta(ctx context.Context) (domain.ReportMeta, error) {
	quarters, err := s.repo.DistinctQuarters(ctx)
	if err != nil {
		return domain.ReportMeta{}, fmt.Errorf("s.repo.DistinctQuarters -> %w", err)
	}

	years, err := s.repo.DistinctYears(ctx)
	if err != nil {
		return domain.ReportMeta{}, fmt.Errorf("s.repo.DistinctYears -> %w", err)
	}

	return domain.ReportMeta{
		Quarters: quarters,
		Years:    years,
	}, nil
}

// Generate builds a period report. Scope precedence mirrors the form: a
// quarter label wins over a year, and neither means all records. Totals
// come from the events' stored columns, so an event whose entries changed
// without a recompute reports its stored figures.
func (s *ReportService) Generate(ctx context.Context, reportType, quarter string, year int) (domain.Report, error) {
	var scope domain.ReportScope
	var title string
	switch {
	case reportType == "quarterly" && quarter != "":
		scope.Quarter = quarter
		title = fmt.Sprintf("%s Report", quarter)
	case reportType == "annual" && year != 0:
		scope.Year = year
		title = fmt.Sprintf("%d Annual Report", year)
	default:
		title = "All Time Report"
	}

	events, err := s.repo.ListByScope(ctx, scope)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.repo.ListByScope -> %w", err)
	}

	income, expense, profit, err := s.repo.TotalsByScope(ctx, scope)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.repo.TotalsByScope -> %w", err)
	}

	count, err := s.repo.CountByScope(ctx, scope)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.repo.CountByScope -> %w", err)
	}

	participants, err := s.repo.SumParticipantsByScope(ctx, scope)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.repo.SumParticipantsByScope -> %w", err)
	}

	byType, err := s.repo.CountByTypeByScope(ctx, scope)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.repo.CountByTypeByScope -> %w", err)
	}

	costs, err := s.repo.CostBreakdownByScope(ctx, scope)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.repo.CostBreakdownByScope -> %w", err)
	}

	return domain.Report{
		Title:             title,
		Events:            events,
		EventCount:        count,
		TotalIncome:       income,
		TotalExpense:      expense,
		NetProfit:         profit,
		TotalParticipants: participants,
		ByEventType:       byType,
		CostBreakdown:     costs,
	}, nil
}
