package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/communitylens/ledger/internal/config"
	"github.com/communitylens/ledger/internal/repository/dao"
)

// OpenSQLite opens the single database file the application persists to.
// Foreign keys are enforced and writers wait instead of failing on a
// locked database, so read-modify-write sequences such as the event
// totals recompute are serialized by sqlite itself.
func OpenSQLite(conf *config.SQLiteConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%v?_foreign_keys=on&_busy_timeout=5000", conf.Path)

	sqliteDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(sqliteDB); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return sqliteDB, nil
}
