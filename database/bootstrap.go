// database/bootstrap.go
package database

import (
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"chili/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Repair databases written by older versions BEFORE AutoMigrate runs.
	if err := migrateChiliesBackfillCreatedAt(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Chili{},
		&entities.ActivityLog{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateChiliesBackfillCreatedAt fills created_at on chilies rows imported by
// older builds that inserted without the column default, so list ordering and
// dashboards stay stable.
func migrateChiliesBackfillCreatedAt(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='chilies'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid     int
		Name    string
		Type    string
		NotNull int
		Pk      int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(chilies)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	hasCreatedAt := false
	for _, c := range cols {
		if strings.EqualFold(c.Name, "created_at") {
			hasCreatedAt = true
			break
		}
	}
	if !hasCreatedAt {
		// AutoMigrate adds the column; new rows get real timestamps.
		return nil
	}

	return db.Exec(`UPDATE chilies SET created_at = planting_date WHERE created_at IS NULL`).Error
}
