package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrLensCategoryNotFound    = errors.New("lens category not found")
	ErrLensSubcategoryNotFound = errors.New("lens subcategory not found")
)

type LensCategory struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"unique;not null"`
	Description   string
	SortOrder     int               `gorm:"default:0"`
	Subcategories []LensSubcategory `gorm:"foreignKey:CategoryID"`
}

type LensSubcategory struct {
	ID          uint   `gorm:"primaryKey"`
	CategoryID  uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	SortOrder   int `gorm:"default:0"`
}

type LensDAO struct {
	db *gorm.DB
}

func NewLensDAO(db *gorm.DB) *LensDAO {
	return &LensDAO{
		db: db,
	}
}

func (d *LensDAO) ListCategories(ctx context.Context) ([]LensCategory, error) {
	var categories []LensCategory

	result := d.db.WithContext(ctx).
		Preload("Subcategories", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order, name")
		}).
		Order("sort_order, name").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *LensDAO) InsertCategory(ctx context.Context, category LensCategory) (LensCategory, error) {
	result := d.db.WithContext(ctx).Create(&category)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return LensCategory{}, ErrNameExists
		}

		return LensCategory{}, result.Error
	}

	return category, nil
}

// DeleteCategory removes the category and all of its subcategories.
func (d *LensDAO) DeleteCategory(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&LensSubcategory{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&LensCategory{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLensCategoryNotFound
		}

		return nil
	})
}

func (d *LensDAO) InsertSubcategory(ctx context.Context, sub LensSubcategory) (LensSubcategory, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&LensCategory{}).
		Where("id = ?", sub.CategoryID).
		Count(&count).Error
	if err != nil {
		return LensSubcategory{}, err
	}
	if count == 0 {
		return LensSubcategory{}, ErrLensCategoryNotFound
	}

	result := d.db.WithContext(ctx).Create(&sub)
	if result.Error != nil {
		return LensSubcategory{}, result.Error
	}

	return sub, nil
}

func (d *LensDAO) DeleteSubcategory(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&LensSubcategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLensSubcategoryNotFound
	}

	return nil
}
