package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCostEntryNotFound    = errors.New("cost entry not found")
	ErrDistributionNotFound = errors.New("profit distribution not found")
)

// CostEntry mirrors the cost_entries table. The cost type and volunteer
// name columns are snapshots taken at creation.
type CostEntry struct {
	ID               uint `gorm:"primaryKey"`
	EventID          uint `gorm:"not null;index"`
	CostTypeID       *uint
	CostTypeName     string
	Description      string
	Hours            float64 `gorm:"default:0"`
	RatePerHour      float64 `gorm:"default:0"`
	Amount           float64 `gorm:"default:0"`
	VolunteerID      *uint   `gorm:"index"`
	VolunteerName    string
	VolunteerContact string
	IsIncome         bool `gorm:"default:false"`
	CreatedAt        time.Time
}

func (CostEntry) TableName() string {
	return "cost_entries"
}

type ProfitDistribution struct {
	ID                   uint   `gorm:"primaryKey"`
	EventID              uint   `gorm:"not null;index"`
	TargetType           string `gorm:"not null"`
	TargetName           string
	TargetOrganizationID *uint
	Percentage           float64 `gorm:"default:0"`
	Amount               float64 `gorm:"default:0"`
	Notes                string
	CreatedAt            time.Time
}

func (ProfitDistribution) TableName() string {
	return "profit_distributions"
}

// CostGroupRow aggregates an event's entries by snapshotted cost type name.
type CostGroupRow struct {
	CostTypeName string
	Total        float64
	TotalHours   float64
}

func (d *EventDAO) InsertCostEntry(ctx context.Context, entry CostEntry) (CostEntry, error) {
	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		return CostEntry{}, result.Error
	}

	return entry, nil
}

func (d *EventDAO) GetCostEntryByID(ctx context.Context, id uint) (CostEntry, error) {
	var entry CostEntry

	result := d.db.WithContext(ctx).First(&entry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CostEntry{}, ErrCostEntryNotFound
		}

		return CostEntry{}, result.Error
	}

	return entry, nil
}

func (d *EventDAO) DeleteCostEntry(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&CostEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCostEntryNotFound
	}

	return nil
}

func (d *EventDAO) ListCostEntries(ctx context.Context, eventID uint) ([]CostEntry, error) {
	var entries []CostEntry

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func (d *EventDAO) GroupCostEntriesByType(ctx context.Context, eventID uint, isIncome bool) ([]CostGroupRow, error) {
	var rows []CostGroupRow

	result := d.db.WithContext(ctx).
		Model(&CostEntry{}).
		Select("cost_type_name AS cost_type_name, COALESCE(SUM(amount), 0) AS total, COALESCE(SUM(hours), 0) AS total_hours").
		Where("event_id = ? AND is_income = ?", eventID, isIncome).
		Group("cost_type_name").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// RecomputeTotals re-derives the event's income, expense and net profit
// from its cost entries and writes them back, all inside one transaction
// so a concurrent entry mutation cannot produce a lost update. Calling it
// again without intervening writes is a no-op.
func (d *EventDAO) RecomputeTotals(ctx context.Context, eventID uint) (income, expense float64, err error) {
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sum := func(isIncome bool, dest *float64) error {
			return tx.Model(&CostEntry{}).
				Select("COALESCE(SUM(amount), 0)").
				Where("event_id = ? AND is_income = ?", eventID, isIncome).
				Scan(dest).Error
		}

		if err := sum(true, &income); err != nil {
			return err
		}
		if err := sum(false, &expense); err != nil {
			return err
		}

		result := tx.Model(&EventProfile{}).
			Where("id = ?", eventID).
			Updates(map[string]interface{}{
				"total_income":  income,
				"total_expense": expense,
				"net_profit":    income - expense,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return income, expense, nil
}

func (d *EventDAO) InsertDistribution(ctx context.Context, dist ProfitDistribution) (ProfitDistribution, error) {
	result := d.db.WithContext(ctx).Create(&dist)
	if result.Error != nil {
		return ProfitDistribution{}, result.Error
	}

	return dist, nil
}

func (d *EventDAO) GetDistributionByID(ctx context.Context, id uint) (ProfitDistribution, error) {
	var dist ProfitDistribution

	result := d.db.WithContext(ctx).First(&dist, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ProfitDistribution{}, ErrDistributionNotFound
		}

		return ProfitDistribution{}, result.Error
	}

	return dist, nil
}

func (d *EventDAO) DeleteDistribution(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&ProfitDistribution{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDistributionNotFound
	}

	return nil
}

func (d *EventDAO) ListDistributions(ctx context.Context, eventID uint) ([]ProfitDistribution, error) {
	var dists []ProfitDistribution

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&dists)
	if result.Error != nil {
		return nil, result.Error
	}

	return dists, nil
}
