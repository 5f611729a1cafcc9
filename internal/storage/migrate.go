package storage

import (
	"fmt"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/partition"

	"gorm.io/gorm"
)

// Migrate creates the unpartitioned tables, the eight worker hash
// partitions and the unique indexes the insert-if-absent writes rely on.
// Job year partitions are not created here: they appear lazily on the
// first posting of a year, through the partition registry.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.Admin{},
		&models.Application{},
		&models.ActivityLog{},
		// Staging table for ensure-worker-exists relocation.
		&models.Worker{},
	); err != nil {
		return fmt.Errorf("migrate base tables: %w", err)
	}

	for _, table := range partition.AllWorkerTables() {
		if err := db.Table(table).AutoMigrate(&models.Worker{}); err != nil {
			return fmt.Errorf("migrate %s: %w", table, err)
		}
		// One profile per user inside a partition. Index names are
		// schema-wide, so they carry the partition name.
		stmt := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS uq_%s_user_id ON %s (user_id)",
			table, table,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("index %s: %w", table, err)
		}
	}

	return nil
}
