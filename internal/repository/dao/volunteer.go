package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrVolunteerNotFound = errors.New("volunteer not found")

type Volunteer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Phone     string
	Email     string
	Address   string
	Notes     string
	CreatedAt time.Time
}

// VolunteerRow is a volunteer with totals aggregated from their entries.
type VolunteerRow struct {
	Volunteer
	TotalHours     float64
	TotalDonations float64
	EventCount     int
}

// VolunteerEntryRow is a cost entry annotated with its event.
type VolunteerEntryRow struct {
	CostEntry
	EventName string
	EventDate time.Time
}

// VolunteerTotals are a volunteer's lifetime hours and donations.
type VolunteerTotals struct {
	TotalHours     float64
	TotalDonations float64
}

type VolunteerDAO struct {
	db *gorm.DB
}

func NewVolunteerDAO(db *gorm.DB) *VolunteerDAO {
	return &VolunteerDAO{
		db: db,
	}
}

func (d *VolunteerDAO) Insert(ctx context.Context, volunteer Volunteer) (Volunteer, error) {
	result := d.db.WithContext(ctx).Create(&volunteer)
	if result.Error != nil {
		return Volunteer{}, result.Error
	}

	return volunteer, nil
}

func (d *VolunteerDAO) GetByID(ctx context.Context, id uint) (Volunteer, error) {
	var volunteer Volunteer

	result := d.db.WithContext(ctx).First(&volunteer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Volunteer{}, ErrVolunteerNotFound
		}

		return Volunteer{}, result.Error
	}

	return volunteer, nil
}

func (d *VolunteerDAO) List(ctx context.Context) ([]VolunteerRow, error) {
	var rows []VolunteerRow

	result := d.db.WithContext(ctx).
		Table("volunteers").
		Select(`volunteers.*,
			COALESCE(SUM(cost_entries.hours), 0) AS total_hours,
			COALESCE(SUM(CASE WHEN cost_entries.is_income THEN cost_entries.amount ELSE 0 END), 0) AS total_donations,
			COUNT(DISTINCT cost_entries.event_id) AS event_count`).
		Joins("LEFT JOIN cost_entries ON cost_entries.volunteer_id = volunteers.id").
		Group("volunteers.id").
		Order("volunteers.name").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *VolunteerDAO) ListEntries(ctx context.Context, volunteerID uint) ([]VolunteerEntryRow, error) {
	var rows []VolunteerEntryRow

	result := d.db.WithContext(ctx).
		Table("cost_entries").
		Select("cost_entries.*, event_profiles.event_name AS event_name, event_profiles.event_date AS event_date").
		Joins("JOIN event_profiles ON cost_entries.event_id = event_profiles.id").
		Where("cost_entries.volunteer_id = ?", volunteerID).
		Order("event_profiles.event_date DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *VolunteerDAO) Totals(ctx context.Context, volunteerID uint) (VolunteerTotals, error) {
	var totals VolunteerTotals

	result := d.db.WithContext(ctx).
		Model(&CostEntry{}).
		Select(`COALESCE(SUM(hours), 0) AS total_hours,
			COALESCE(SUM(CASE WHEN is_income THEN amount ELSE 0 END), 0) AS total_donations`).
		Where("volunteer_id = ?", volunteerID).
		Scan(&totals)
	if result.Error != nil {
		return VolunteerTotals{}, result.Error
	}

	return totals, nil
}

// Delete clears the volunteer reference on any cost entries before removing
// the volunteer. The entries themselves stay, with the snapshotted name and
// contact intact, so financial history survives.
func (d *VolunteerDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&CostEntry{}).
			Where("volunteer_id = ?", id).
			Update("volunteer_id", nil).Error
		if err != nil {
			return err
		}

		result := tx.Delete(&Volunteer{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVolunteerNotFound
		}

		return nil
	})
}
