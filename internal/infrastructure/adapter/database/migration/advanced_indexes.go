package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// owner listings are ordered newest first
		name: "idx_imagetocode_owner_recent",
		sql:  `CREATE INDEX IF NOT EXISTS idx_imagetocode_owner_recent ON imagetocode (user_email, id DESC)`,
	},
	{
		name: "idx_payments_owner_recent",
		sql:  `CREATE INDEX IF NOT EXISTS idx_payments_owner_recent ON payments (user_email, id DESC)`,
	},
	{
		// open orders are the only ones verification looks up repeatedly
		name: "idx_payments_open_orders",
		sql:  `CREATE INDEX IF NOT EXISTS idx_payments_open_orders ON payments (order_id) WHERE status = 'created'`,
	},
	{
		name: "idx_payments_created_at_brin",
		sql:  `CREATE INDEX IF NOT EXISTS idx_payments_created_at_brin ON payments USING BRIN (created_at) WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	db := m.db.WithContext(ctx)
	for _, idx := range advancedIndexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks; failures are logged, not returned
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)
	// users rows are updated on every debit, leave room for HOT updates
	if err := db.Exec(`ALTER TABLE users SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for users table", map[string]any{"error": err.Error()})
	}

	if err := db.Exec(`ALTER TABLE imagetocode ALTER COLUMN user_email SET STATISTICS 500`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_email", map[string]any{"error": err.Error()})
	}

	return nil
}
