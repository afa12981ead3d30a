package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/communitylens/ledger/internal/repository/dao"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dao.InitTables(db))

	return db
}

func TestInsertEventType_DuplicateName(t *testing.T) {
	catalogDAO := dao.NewCatalogDAO(newTestDB(t))
	ctx := context.Background()

	// "School" ships as seed data.
	_, err := catalogDAO.InsertEventType(ctx, dao.EventType{Name: "School"})
	assert.ErrorIs(t, err, dao.ErrNameExists)

	created, err := catalogDAO.InsertEventType(ctx, dao.EventType{Name: "Sports"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestInsertCostType_DuplicateName(t *testing.T) {
	catalogDAO := dao.NewCatalogDAO(newTestDB(t))
	ctx := context.Background()

	_, err := catalogDAO.InsertCostType(ctx, dao.CostType{Name: "Labor"})
	assert.ErrorIs(t, err, dao.ErrNameExists)
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, dao.InitTables(db))

	var count int64
	require.NoError(t, db.Model(&dao.CostType{}).Count(&count).Error)
	assert.EqualValues(t, 7, count)
}

func TestLensDAO_SubcategoryNeedsCategory(t *testing.T) {
	lensDAO := dao.NewLensDAO(newTestDB(t))
	ctx := context.Background()

	_, err := lensDAO.InsertSubcategory(ctx, dao.LensSubcategory{CategoryID: 9999, Name: "Orphan"})
	assert.ErrorIs(t, err, dao.ErrLensCategoryNotFound)
}

func TestLensDAO_DeleteCategoryRemovesSubcategories(t *testing.T) {
	db := newTestDB(t)
	lensDAO := dao.NewLensDAO(db)
	ctx := context.Background()

	category, err := lensDAO.InsertCategory(ctx, dao.LensCategory{Name: "TEMP"})
	require.NoError(t, err)

	sub, err := lensDAO.InsertSubcategory(ctx, dao.LensSubcategory{CategoryID: category.ID, Name: "Child"})
	require.NoError(t, err)

	require.NoError(t, lensDAO.DeleteCategory(ctx, category.ID))

	var count int64
	require.NoError(t, db.Model(&dao.LensSubcategory{}).Where("id = ?", sub.ID).Count(&count).Error)
	assert.Zero(t, count)
}
