package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
)

// LegacySchemaUpgrade prepares tables created by the first release for the current models:
// it clamps negative balances, removes duplicate design uids (keeping the newest) and
// keeps the design code column as json so stored bytes are not normalised.
type LegacySchemaUpgrade struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewLegacySchemaUpgrade creates a new migration instance
func NewLegacySchemaUpgrade(db *gorm.DB, logger coreport.Logger) *LegacySchemaUpgrade {
	return &LegacySchemaUpgrade{db: db, logger: logger}
}

// Run executes the migration; it is a no-op on an empty database
func (m *LegacySchemaUpgrade) Run(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	migrator := db.Migrator()

	if migrator.HasTable("users") {
		m.logger.Info("Clamping negative balances before adding the credits check", nil)
		if err := db.Exec(`UPDATE users SET credits = 0 WHERE credits < 0`).Error; err != nil {
			m.logger.Error("Failed to clamp balances", map[string]any{"error": err.Error()})
			return err
		}
	}

	if !migrator.HasTable("imagetocode") {
		return nil
	}

	m.logger.Info("Removing duplicate design uids before adding the unique index", nil)
	if err := db.Exec(`
		DELETE FROM imagetocode a
		USING imagetocode b
		WHERE a.uid = b.uid AND a.id < b.id
	`).Error; err != nil {
		m.logger.Error("Failed to remove duplicate uids", map[string]any{"error": err.Error()})
		return err
	}

	var dataType string
	if err := db.Raw(`
		SELECT data_type
		FROM information_schema.columns
		WHERE table_name = 'imagetocode' AND column_name = 'code'
	`).Scan(&dataType).Error; err != nil {
		m.logger.Error("Failed to inspect code column", map[string]any{"error": err.Error()})
		return err
	}
	if dataType != "" && dataType != "json" {
		m.logger.Warn("Converting imagetocode.code to json", map[string]any{"from": dataType})
		if err := db.Exec(`ALTER TABLE imagetocode ALTER COLUMN code TYPE json USING code::json`).Error; err != nil {
			m.logger.Error("Failed to convert code column", map[string]any{"error": err.Error()})
			return err
		}
	}

	return nil
}
