package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository/dao"
)

var (
	ErrEventNotFound        = dao.ErrEventNotFound
	ErrCostEntryNotFound    = dao.ErrCostEntryNotFound
	ErrDistributionNotFound = dao.ErrDistributionNotFound
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.EventProfile) (dao.EventProfile, error)
	GetByID(ctx context.Context, id uint) (dao.EventProfile, error)
	GetRowByID(ctx context.Context, id uint) (dao.EventRow, error)
	List(ctx context.Context) ([]dao.EventRow, error)
	Update(ctx context.Context, event dao.EventProfile) error
	Delete(ctx context.Context, id uint) error
	ListRecent(ctx context.Context, start, end time.Time, orgID *uint, limit int) ([]dao.EventRow, error)
	CountInRange(ctx context.Context, start, end time.Time, orgID *uint) (int, error)
	SumLaborValue(ctx context.Context, start, end time.Time, orgID *uint) (float64, error)
	SumEntryAmount(ctx context.Context, start, end time.Time, orgID *uint, isIncome bool) (float64, error)
	DistinctYears(ctx context.Context) ([]int, error)
	DistinctQuarters(ctx context.Context) ([]string, error)
	ListByScope(ctx context.Context, scope dao.ReportScope) ([]dao.EventRow, error)
	TotalsByScope(ctx context.Context, scope dao.ReportScope) (dao.EventTotals, error)
	CountByScope(ctx context.Context, scope dao.ReportScope) (int, error)
	SumParticipantsByScope(ctx context.Context, scope dao.ReportScope) (int, error)
	CountByTypeByScope(ctx context.Context, scope dao.ReportScope) ([]dao.TypeBreakdownRow, error)
	CostBreakdownByScope(ctx context.Context, scope dao.ReportScope) ([]dao.CostBreakdownRow, error)
	InsertCostEntry(ctx context.Context, entry dao.CostEntry) (dao.CostEntry, error)
	GetCostEntryByID(ctx context.Context, id uint) (dao.CostEntry, error)
	DeleteCostEntry(ctx context.Context, id uint) error
	ListCostEntries(ctx context.Context, eventID uint) ([]dao.CostEntry, error)
	GroupCostEntriesByType(ctx context.Context, eventID uint, isIncome bool) ([]dao.CostGroupRow, error)
	RecomputeTotals(ctx context.Context, eventID uint) (income, expense float64, err error)
	InsertDistribution(ctx context.Context, dist dao.ProfitDistribution) (dao.ProfitDistribution, error)
	GetDistributionByID(ctx context.Context, id uint) (dao.ProfitDistribution, error)
	DeleteDistribution(ctx context.Context, id uint) error
	ListDistributions(ctx context.Context, eventID uint) ([]dao.ProfitDistribution, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) domainToDao(e domain.Event) dao.EventProfile {
	return dao.EventProfile{
		ID:                   e.ID,
		EventName:            e.Name,
		EventDate:            e.Date,
		EventTypeID:          e.EventTypeID,
		LensCategoryID:       e.LensCategoryID,
		LensSubcategoryID:    e.LensSubcategoryID,
		Location:             e.Location,
		Description:          e.Description,
		OrganizationID:       e.OrganizationID,
		CoordinatorName:      e.CoordinatorName,
		CoordinatorPhone:     e.CoordinatorPhone,
		CoordinatorEmail:     e.CoordinatorEmail,
		ExpectedParticipants: e.ExpectedParticipants,
		ActualParticipants:   e.ActualParticipants,
		TotalIncome:          e.TotalIncome,
		TotalExpense:         e.TotalExpense,
		NetProfit:            e.NetProfit,
		Notes:                e.Notes,
		Status:               e.Status,
		EntryDate:            e.EntryDate,
		Quarter:              e.Quarter,
		Year:                 e.Year,
	}
}

func (r *EventRepository) daoToDomain(e dao.EventProfile) domain.Event {
	return domain.Event{
		ID:                   e.ID,
		Name:                 e.EventName,
		Date:                 e.EventDate,
		EventTypeID:          e.EventTypeID,
		LensCategoryID:       e.LensCategoryID,
		LensSubcategoryID:    e.LensSubcategoryID,
		Location:             e.Location,
		Description:          e.Description,
		OrganizationID:       e.OrganizationID,
		CoordinatorName:      e.CoordinatorName,
		CoordinatorPhone:     e.CoordinatorPhone,
		CoordinatorEmail:     e.CoordinatorEmail,
		ExpectedParticipants: e.ExpectedParticipants,
		ActualParticipants:   e.ActualParticipants,
		TotalIncome:          e.TotalIncome,
		TotalExpense:         e.TotalExpense,
		NetProfit:            e.NetProfit,
		Notes:                e.Notes,
		Status:               e.Status,
		EntryDate:            e.EntryDate,
		Quarter:              e.Quarter,
		Year:                 e.Year,
	}
}

func (r *EventRepository) rowToDomain(row dao.EventRow) domain.Event {
	event := r.daoToDomain(row.EventProfile)
	if row.EventTypeName != nil {
		event.EventTypeName = *row.EventTypeName
	}
	if row.OrgName != nil {
		event.OrganizationName = *row.OrgName
	}

	return event
}

func (r *EventRepository) rowsToDomain(rows []dao.EventRow) []domain.Event {
	events := make([]domain.Event, len(rows))
	for i, row := range rows {
		events[i] = r.rowToDomain(row)
	}

	return events
}

func (r *EventRepository) entryDomainToDao(c domain.CostEntry) dao.CostEntry {
	return dao.CostEntry{
		ID:               c.ID,
		EventID:          c.EventID,
		CostTypeID:       c.CostTypeID,
		CostTypeName:     c.CostTypeName,
		Description:      c.Description,
		Hours:            c.Hours,
		RatePerHour:      c.RatePerHour,
		Amount:           c.Amount,
		VolunteerID:      c.VolunteerID,
		VolunteerName:    c.VolunteerName,
		VolunteerContact: c.VolunteerContact,
		IsIncome:         c.IsIncome,
		CreatedAt:        c.CreatedAt,
	}
}

func (r *EventRepository) entryDaoToDomain(c dao.CostEntry) domain.CostEntry {
	return domain.CostEntry{
		ID:               c.ID,
		EventID:          c.EventID,
		CostTypeID:       c.CostTypeID,
		CostTypeName:     c.CostTypeName,
		Description:      c.Description,
		Hours:            c.Hours,
		RatePerHour:      c.RatePerHour,
		Amount:           c.Amount,
		VolunteerID:      c.VolunteerID,
		VolunteerName:    c.VolunteerName,
		VolunteerContact: c.VolunteerContact,
		IsIncome:         c.IsIncome,
		CreatedAt:        c.CreatedAt,
	}
}

func (r *EventRepository) distDomainToDao(p domain.ProfitDistribution) dao.ProfitDistribution {
	return dao.ProfitDistribution{
		ID:                   p.ID,
		EventID:              p.EventID,
		TargetType:           p.TargetType,
		TargetName:           p.TargetName,
		TargetOrganizationID: p.TargetOrganizationID,
		Percentage:           p.Percentage,
		Amount:               p.Amount,
		Notes:                p.Notes,
	}
}

func (r *EventRepository) distDaoToDomain(p dao.ProfitDistribution) domain.ProfitDistribution {
	return domain.ProfitDistribution{
		ID:                   p.ID,
		EventID:              p.EventID,
		TargetType:           p.TargetType,
		TargetName:           p.TargetName,
		TargetOrganizationID: p.TargetOrganizationID,
		Percentage:           p.Percentage,
		Amount:               p.Amount,
		Notes:                p.Notes,
	}
}

func scopeToDao(scope domain.ReportScope) dao.ReportScope {
	return dao.ReportScope{
		Quarter: scope.Quarter,
		Year:    scope.Year,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (domain.Event, error) {
	event, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.GetByID -> %w", err)
	}

	return r.daoToDomain(event), nil
}

func (r *EventRepository) GetWithRefs(ctx context.Context, id uint) (domain.Event, error) {
	row, err := r.dao.GetRowByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.GetRowByID -> %w", err)
	}

	return r.rowToDomain(row), nil
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.rowsToDomain(rows), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) error {
	if err := r.dao.Update(ctx, r.domainToDao(event)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) ListRecent(ctx context.Context, start, end time.Time, orgID *uint, limit int) ([]domain.Event, error) {
	rows, err := r.dao.ListRecent(ctx, start, end, orgID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListRecent -> %w", err)
	}

	return r.rowsToDomain(rows), nil
}

// Summarize computes the dashboard aggregates for a date window.
func (r *EventRepository) Summarize(ctx context.Context, start, end time.Time, orgID *uint) (domain.Summary, error) {
	count, err := r.dao.CountInRange(ctx, start, end, orgID)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("r.dao.CountInRange -> %w", err)
	}

	labor, err := r.dao.SumLaborValue(ctx, start, end, orgID)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("r.dao.SumLaborValue -> %w", err)
	}

	income, err := r.dao.SumEntryAmount(ctx, start, end, orgID, true)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("r.dao.SumEntryAmount -> %w", err)
	}

	expense, err := r.dao.SumEntryAmount(ctx, start, end, orgID, false)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("r.dao.SumEntryAmount -> %w", err)
	}

	return domain.Summary{
		EventCount: count,
		LaborValue: labor,
		Income:     income,
		Expense:    expense,
	}, nil
}

func (r *EventRepository) DistinctYears(ctx context.Context) ([]int, error) {
	years, err := r.dao.DistinctYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.DistinctYears -> %w", err)
	}

	return years, nil
}

func (r *EventRepository) DistinctQuarters(ctx context.Context) ([]string, error) {
	quarters, err := r.dao.DistinctQuarters(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.DistinctQuarters -> %w", err)
	}

	return quarters, nil
}

func (r *EventRepository) ListByScope(ctx context.Context, scope domain.ReportScope) ([]domain.Event, error) {
	rows, err := r.dao.ListByScope(ctx, scopeToDao(scope))
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByScope -> %w", err)
	}

	return r.rowsToDomain(rows), nil
}

func (r *EventRepository) TotalsByScope(ctx context.Context, scope domain.ReportScope) (income, expense, profit float64, err error) {
	totals, err := r.dao.TotalsByScope(ctx, scopeToDao(scope))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("r.dao.TotalsByScope -> %w", err)
	}

	return totals.Income, totals.Expense, totals.Profit, nil
}

func (r *EventRepository) CountByScope(ctx context.Context, scope domain.ReportScope) (int, error) {
	count, err := r.dao.CountByScope(ctx, scopeToDao(scope))
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByScope -> %w", err)
	}

	return count, nil
}

func (r *EventRepository) SumParticipantsByScope(ctx context.Context, scope domain.ReportScope) (int, error) {
	total, err := r.dao.SumParticipantsByScope(ctx, scopeToDao(scope))
	if err != nil {
		return 0, fmt.Errorf("r.dao.SumParticipantsByScope -> %w", err)
	}

	return total, nil
}

func (r *EventRepository) CountByTypeByScope(ctx context.Context, scope domain.ReportScope) ([]domain.TypeBreakdown, error) {
	rows, err := r.dao.CountByTypeByScope(ctx, scopeToDao(scope))
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByTypeByScope -> %w", err)
	}

	breakdown := make([]domain.TypeBreakdown, len(rows))
	for i, row := range rows {
		breakdown[i] = domain.TypeBreakdown{
			EventTypeName: row.Name,
			Count:         row.Count,
			Participants:  row.Participants,
			NetProfit:     row.Profit,
		}
	}

	return breakdown, nil
}

func (r *EventRepository) CostBreakdownByScope(ctx context.Context, scope domain.ReportScope) ([]domain.CostBreakdown, error) {
	rows, err := r.dao.CostBreakdownByScope(ctx, scopeToDao(scope))
	if err != nil {
		return nil, fmt.Errorf("r.dao.CostBreakdownByScope -> %w", err)
	}

	breakdown := make([]domain.CostBreakdown, len(rows))
	for i, row := range rows {
		breakdown[i] = domain.CostBreakdown{
			CostTypeName: row.CostTypeName,
			Amount:       row.Total,
			Hours:        row.TotalHours,
		}
	}

	return breakdown, nil
}

func (r *EventRepository) AddCostEntry(ctx context.Context, entry domain.CostEntry) (domain.CostEntry, error) {
	created, err := r.dao.InsertCostEntry(ctx, r.entryDomainToDao(entry))
	if err != nil {
		return domain.CostEntry{}, fmt.Errorf("r.dao.InsertCostEntry -> %w", err)
	}

	return r.entryDaoToDomain(created), nil
}

func (r *EventRepository) GetCostEntry(ctx context.Context, id uint) (domain.CostEntry, error) {
	entry, err := r.dao.GetCostEntryByID(ctx, id)
	if err != nil {
		return domain.CostEntry{}, fmt.Errorf("r.dao.GetCostEntryByID -> %w", err)
	}

	return r.entryDaoToDomain(entry), nil
}

func (r *EventRepository) DeleteCostEntry(ctx context.Context, id uint) error {
	if err := r.dao.DeleteCostEntry(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCostEntry -> %w", err)
	}

	return nil
}

func (r *EventRepository) ListCostEntries(ctx context.Context, eventID uint) ([]domain.CostEntry, error) {
	rows, err := r.dao.ListCostEntries(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCostEntries -> %w", err)
	}

	entries := make([]domain.CostEntry, len(rows))
	for i, row := range rows {
		entries[i] = r.entryDaoToDomain(row)
	}

	return entries, nil
}

func (r *EventRepository) GroupCostEntries(ctx context.Context, eventID uint, isIncome bool) ([]domain.CostBreakdown, error) {
	rows, err := r.dao.GroupCostEntriesByType(ctx, eventID, isIncome)
	if err != nil {
		return nil, fmt.Errorf("r.dao.GroupCostEntriesByType -> %w", err)
	}

	groups := make([]domain.CostBreakdown, len(rows))
	for i, row := range rows {
		groups[i] = domain.CostBreakdown{
			CostTypeName: row.CostTypeName,
			Amount:       row.Total,
			Hours:        row.TotalHours,
		}
	}

	return groups, nil
}

func (r *EventRepository) RecomputeTotals(ctx context.Context, eventID uint) (income, expense float64, err error) {
	income, expense, err = r.dao.RecomputeTotals(ctx, eventID)
	if err != nil {
		return 0, 0, fmt.Errorf("r.dao.RecomputeTotals -> %w", err)
	}

	return income, expense, nil
}

func (r *EventRepository) AddDistribution(ctx context.Context, dist domain.ProfitDistribution) (domain.ProfitDistribution, error) {
	created, err := r.dao.InsertDistribution(ctx, r.distDomainToDao(dist))
	if err != nil {
		return domain.ProfitDistribution{}, fmt.Errorf("r.dao.InsertDistribution -> %w", err)
	}

	return r.distDaoToDomain(created), nil
}

func (r *EventRepository) GetDistribution(ctx context.Context, id uint) (domain.ProfitDistribution, error) {
	dist, err := r.dao.GetDistributionByID(ctx, id)
	if err != nil {
		return domain.ProfitDistribution{}, fmt.Errorf("r.dao.GetDistributionByID -> %w", err)
	}

	return r.distDaoToDomain(dist), nil
}

func (r *EventRepository) DeleteDistribution(ctx context.Context, id uint) error {
	if err := r.dao.DeleteDistribution(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteDistribution -> %w", err)
	}

	return nil
}

func (r *EventRepository) ListDistributions(ctx context.Context, eventID uint) ([]domain.ProfitDistribution, error) {
	rows, err := r.dao.ListDistributions(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListDistributions -> %w", err)
	}

	dists := make([]domain.ProfitDistribution, len(rows))
	for i, row := range rows {
		dists[i] = r.distDaoToDomain(row)
	}

	return dists, nil
}
