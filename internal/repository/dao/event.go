package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

// EventProfile mirrors the event_profiles table. The three totals and the
// quarter/year columns are derived values written back by the application.
type EventProfile struct {
	ID                   uint      `gorm:"primaryKey"`
	EventName            string    `gorm:"not null"`
	EventDate            time.Time `gorm:"not null;index"`
	EventTypeID          *uint
	LensCategoryID       *uint
	LensSubcategoryID    *uint
	Location             string
	Description          string
	OrganizationID       *uint `gorm:"index"`
	CoordinatorName      string
	CoordinatorPhone     string
	CoordinatorEmail     string
	ExpectedParticipants int       `gorm:"default:0"`
	ActualParticipants   int       `gorm:"default:0"`
	TotalIncome          float64   `gorm:"default:0"`
	TotalExpense         float64   `gorm:"default:0"`
	NetProfit            float64   `gorm:"default:0"`
	Notes                string
	Status               string    `gorm:"default:'In Progress'"`
	EntryDate            time.Time `gorm:"autoCreateTime"`
	Quarter              string    `gorm:"index"`
	Year                 int       `gorm:"index"`
}

func (EventProfile) TableName() string {
	return "event_profiles"
}

// EventRow is an event joined with the names of its type and organization.
type EventRow struct {
	EventProfile
	EventTypeName *string
	OrgName       *string
}

// ReportScope narrows report queries to a quarter label, a year, or
// (zero value) all records.
type ReportScope struct {
	Quarter string
	Year    int
}

// EventTotals are the summed stored totals over a report scope.
type EventTotals struct {
	Income  float64
	Expense float64
	Profit  float64
}

// TypeBreakdownRow groups events by type name; events without a type have
// a NULL name.
type TypeBreakdownRow struct {
	Name         *string
	Count        int
	Participants int
	Profit       float64
}

// CostBreakdownRow groups cost entries by snapshotted cost type name.
type CostBreakdownRow struct {
	CostTypeName string
	Total        float64
	TotalHours   float64
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// dateRange restricts event queries to an inclusive date window and an
// optional organization. Values are always bound parameters; nothing from
// the request is ever spliced into the query text.
func dateRange(start, end time.Time, orgID *uint) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("event_profiles.event_date BETWEEN ? AND ?", start, end)
		if orgID != nil {
			tx = tx.Where("event_profiles.organization_id = ?", *orgID)
		}

		return tx
	}
}

func scoped(scope ReportScope) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		switch {
		case scope.Quarter != "":
			return tx.Where("event_profiles.quarter = ?", scope.Quarter)
		case scope.Year != 0:
			return tx.Where("event_profiles.year = ?", scope.Year)
		default:
			return tx
		}
	}
}

func withRefNames(tx *gorm.DB) *gorm.DB {
	return tx.Table("event_profiles").
		Select("event_profiles.*, event_types.name AS event_type_name, organizations.name AS org_name").
		Joins("LEFT JOIN event_types ON event_types.id = event_profiles.event_type_id").
		Joins("LEFT JOIN organizations ON organizations.id = event_profiles.organization_id")
}

func (d *EventDAO) Insert(ctx context.Context, event EventProfile) (EventProfile, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return EventProfile{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) GetByID(ctx context.Context, id uint) (EventProfile, error) {
	var event EventProfile

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventProfile{}, ErrEventNotFound
		}

		return EventProfile{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) GetRowByID(ctx context.Context, id uint) (EventRow, error) {
	var row EventRow

	result := withRefNames(d.db.WithContext(ctx)).
		Where("event_profiles.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return EventRow{}, result.Error
	}
	if result.RowsAffected == 0 {
		return EventRow{}, ErrEventNotFound
	}

	return row, nil
}

func (d *EventDAO) List(ctx context.Context) ([]EventRow, error) {
	var rows []EventRow

	result := withRefNames(d.db.WithContext(ctx)).
		Order("event_profiles.event_date DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// Update writes the editable columns. The derived totals are untouched;
// they belong to RecomputeTotals.
func (d *EventDAO) Update(ctx context.Context, event EventProfile) error {
	result := d.db.WithContext(ctx).
		Model(&EventProfile{}).
		Where("id = ?", event.ID).
		Select(
			"event_name", "event_date", "event_type_id", "lens_category_id", "lens_subcategory_id",
			"location", "description", "organization_id",
			"coordinator_name", "coordinator_phone", "coordinator_email",
			"expected_participants", "actual_participants", "notes", "status", "quarter", "year",
		).
		Updates(event)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete removes the event and its cost entries and profit distributions
// in one transaction.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&CostEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&ProfitDistribution{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&EventProfile{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return nil
	})
}

func (d *EventDAO) ListRecent(ctx context.Context, start, end time.Time, orgID *uint, limit int) ([]EventRow, error) {
	var rows []EventRow

	result := withRefNames(d.db.WithContext(ctx)).
		Scopes(dateRange(start, end, orgID)).
		Order("event_profiles.event_date DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *EventDAO) CountInRange(ctx context.Context, start, end time.Time, orgID *uint) (int, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&EventProfile{}).
		Scopes(dateRange(start, end, orgID)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(count), nil
}

// SumLaborValue sums hours x rate over cost entries whose snapshotted cost
// type name is exactly "Labor". The match is on the snapshot, not the type
// id, so renaming a cost type never rewrites historical labor totals.
func (d *EventDAO) SumLaborValue(ctx context.Context, start, end time.Time, orgID *uint) (float64, error) {
	var value float64

	result := d.db.WithContext(ctx).
		Table("cost_entries").
		Select("COALESCE(SUM(cost_entries.hours * cost_entries.rate_per_hour), 0)").
		Joins("JOIN event_profiles ON cost_entries.event_id = event_profiles.id").
		Scopes(dateRange(start, end, orgID)).
		Where("cost_entries.cost_type_name = ?", "Labor").
		Scan(&value)
	if result.Error != nil {
		return 0, result.Error
	}

	return value, nil
}

// SumEntryAmount sums cost entry amounts over a date window, partitioned
// by the income flag.
func (d *EventDAO) SumEntryAmount(ctx context.Context, start, end time.Time, orgID *uint, isIncome bool) (float64, error) {
	var value float64

	result := d.db.WithContext(ctx).
		Table("cost_entries").
		Select("COALESCE(SUM(cost_entries.amount), 0)").
		Joins("JOIN event_profiles ON cost_entries.event_id = event_profiles.id").
		Scopes(dateRange(start, end, orgID)).
		Where("cost_entries.is_income = ?", isIncome).
		Scan(&value)
	if result.Error != nil {
		return 0, result.Error
	}

	return value, nil
}

func (d *EventDAO) DistinctYears(ctx context.Context) ([]int, error) {
	var years []int

	result := d.db.WithContext(ctx).
		Model(&EventProfile{}).
		Distinct().
		Where("year IS NOT NULL AND year != 0").
		Order("year DESC").
		Pluck("year", &years)
	if result.Error != nil {
		return nil, result.Error
	}

	return years, nil
}

func (d *EventDAO) DistinctQuarters(ctx context.Context) ([]string, error) {
	var quarters []string

	result := d.db.WithContext(ctx).
		Model(&EventProfile{}).
		Distinct().
		Where("quarter IS NOT NULL AND quarter != ''").
		Order("quarter DESC").
		Pluck("quarter", &quarters)
	if result.Error != nil {
		return nil, result.Error
	}

	return quarters, nil
}

func (d *EventDAO) ListByScope(ctx context.Context, scope ReportScope) ([]EventRow, error) {
	var rows []EventRow

	result := withRefNames(d.db.WithContext(ctx)).
		Scopes(scoped(scope)).
		Order("event_profiles.event_date").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// TotalsByScope sums the stored per-event totals, as reports work off the
// derived columns rather than re-walking the cost entries.
func (d *EventDAO) TotalsByScope(ctx context.Context, scope ReportScope) (EventTotals, error) {
	var totals EventTotals

	result := d.db.WithContext(ctx).
		Model(&EventProfile{}).
		Select("COALESCE(SUM(total_income), 0) AS income, COALESCE(SUM(total_expense), 0) AS expense, COALESCE(SUM(net_profit), 0) AS profit").
		Scopes(scoped(scope)).
		Scan(&totals)
	if result.Error != nil {
		return EventTotals{}, result.Error
	}

	return totals, nil
}

func (d *EventDAO) CountByScope(ctx context.Context, scope ReportScope) (int, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&EventProfile{}).
		Scopes(scoped(scope)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(count), nil
}

func (d *EventDAO) SumParticipantsByScope(ctx context.Context, scope ReportScope) (int, error) {
	var total int

	result := d.db.WithContext(ctx).
		Model(&EventProfile{}).
		Select("COALESCE(SUM(actual_participants), 0)").
		Scopes(scoped(scope)).
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}

func (d *EventDAO) CountByTypeByScope(ctx context.Context, scope ReportScope) ([]TypeBreakdownRow, error) {
	var rows []TypeBreakdownRow

	result := d.db.WithContext(ctx).
		Table("event_profiles").
		Select("event_types.name AS name, COUNT(*) AS count, COALESCE(SUM(event_profiles.actual_participants), 0) AS participants, COALESCE(SUM(event_profiles.net_profit), 0) AS profit").
		Joins("LEFT JOIN event_types ON event_types.id = event_profiles.event_type_id").
		Scopes(scoped(scope)).
		Group("event_types.name").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *EventDAO) CostBreakdownByScope(ctx context.Context, scope ReportScope) ([]CostBreakdownRow, error) {
	var rows []CostBreakdownRow

	result := d.db.WithContext(ctx).
		Table("cost_entries").
		Select("cost_entries.cost_type_name AS cost_type_name, SUM(cost_entries.amount) AS total, SUM(cost_entries.hours) AS total_hours").
		Joins("JOIN event_profiles ON cost_entries.event_id = event_profiles.id").
		Scopes(scoped(scope)).
		Where("cost_entries.is_income = ?", false).
		Group("cost_entries.cost_type_name").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
