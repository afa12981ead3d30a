package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNameExists        = errors.New("name already exists")
	ErrEventTypeNotFound = errors.New("event type not found")
	ErrCostTypeNotFound  = errors.New("cost type not found")
)

type EventType struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"unique;not null"`
	Description string
}

type CostType struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"unique;not null"`
	DefaultRate float64 `gorm:"default:0"`
	Description string
}

// CatalogDAO persists the two reference catalogs, event types and cost
// types. Both are add/delete only.
type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) ListEventTypes(ctx context.Context) ([]EventType, error) {
	var types []EventType

	result := d.db.WithContext(ctx).Order("name").Find(&types)
	if result.Error != nil {
		return nil, result.Error
	}

	return types, nil
}

func (d *CatalogDAO) InsertEventType(ctx context.Context, et EventType) (EventType, error) {
	result := d.db.WithContext(ctx).Create(&et)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return EventType{}, ErrNameExists
		}

		return EventType{}, result.Error
	}

	return et, nil
}

func (d *CatalogDAO) DeleteEventType(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&EventType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventTypeNotFound
	}

	return nil
}

func (d *CatalogDAO) ListCostTypes(ctx context.Context) ([]CostType, error) {
	var types []CostType

	result := d.db.WithContext(ctx).Order("name").Find(&types)
	if result.Error != nil {
		return nil, result.Error
	}

	return types, nil
}

func (d *CatalogDAO) GetCostTypeByID(ctx context.Context, id uint) (CostType, error) {
	var ct CostType

	result := d.db.WithContext(ctx).First(&ct, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CostType{}, ErrCostTypeNotFound
		}

		return CostType{}, result.Error
	}

	return ct, nil
}

func (d *CatalogDAO) InsertCostType(ctx context.Context, ct CostType) (CostType, error) {
	result := d.db.WithContext(ctx).Create(&ct)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return CostType{}, ErrNameExists
		}

		return CostType{}, result.Error
	}

	return ct, nil
}

func (d *CatalogDAO) DeleteCostType(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&CostType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCostTypeNotFound
	}

	return nil
}
