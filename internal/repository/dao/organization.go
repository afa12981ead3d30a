package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrOrganizationNotFound = errors.New("organization not found")

type Organization struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Type         string
	Size         string
	ContactName  string
	ContactPhone string
	ContactEmail string
	CreatedAt    time.Time
}

type OrganizationDAO struct {
	db *gorm.DB
}

func NewOrganizationDAO(db *gorm.DB) *OrganizationDAO {
	return &OrganizationDAO{
		db: db,
	}
}

func (d *OrganizationDAO) Insert(ctx context.Context, org Organization) (Organization, error) {
	result := d.db.WithContext(ctx).Create(&org)
	if result.Error != nil {
		return Organization{}, result.Error
	}

	return org, nil
}

func (d *OrganizationDAO) List(ctx context.Context) ([]Organization, error) {
	var orgs []Organization

	result := d.db.WithContext(ctx).Order("name").Find(&orgs)
	if result.Error != nil {
		return nil, result.Error
	}

	return orgs, nil
}

// Delete removes the organization only. Events and distributions keep any
// reference they hold to it; orphaned ids are accepted here.
func (d *OrganizationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Organization{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrganizationNotFound
	}

	return nil
}
