package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/repository"
)

const poolSampleInterval = 30 * time.Second

// Manager owns the database connection and hands out repositories
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	queryRecorder     QueryRecorder
	poolRecorder      PoolStatsRecorder
	connectionMonitor *ConnectionPoolMonitor
}

// Option configures a Manager
type Option func(*Manager)

// WithQueryRecorder reports every statement to r
func WithQueryRecorder(r QueryRecorder) Option {
	return func(m *Manager) { m.queryRecorder = r }
}

// WithPoolStatsRecorder reports pool samples to r
func WithPoolStatsRecorder(r PoolStatsRecorder) Option {
	return func(m *Manager) { m.poolRecorder = r }
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...Option) *Manager {
	m := &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connect opens the database, retrying RetryAttempts times RetryDelay apart
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	attempts := max(m.config.RetryAttempts, 1)
	var (
		db  *gorm.DB
		err error
	)
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			timer := time.NewTimer(m.config.RetryDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		db, err = openGorm(m.config, m.logger, m.timeProvider)
		if err == nil {
			err = ping(ctx, db, m.config.QueryTimeout)
		}
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	if err := db.Use(NewQueryMonitor(m.queryRecorder, m.timeProvider)); err != nil {
		return nil, fmt.Errorf("failed to register query monitor: %w", err)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"host":           m.config.Host,
		"port":           m.config.Port,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = db
	m.connectionMonitor = NewConnectionPoolMonitor(db, m.logger, m.poolRecorder)
	if err := m.connectionMonitor.Start(poolSampleInterval); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
		m.connectionMonitor = nil
	}

	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping reports whether the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not connected")
	}
	return ping(ctx, m.db, m.config.QueryTimeout)
}

// Close stops pool monitoring and closes the connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// RunMigrations brings the schema to the current version
func (m *Manager) RunMigrations(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider, DefaultRetryConfig())
}

// UserRepository returns a user repository outside any transaction
func (m *Manager) UserRepository() persistence.UserRepository {
	return repository.NewUserRepository(m.db, m.timeProvider, m.logger)
}

// DesignRepository returns the design repository
func (m *Manager) DesignRepository() persistence.DesignRepository {
	return repository.NewDesignRepository(m.db, m.logger)
}

// PaymentRepository returns a payment repository outside any transaction
func (m *Manager) PaymentRepository() persistence.PaymentRepository {
	return repository.NewPaymentRepository(m.db, m.logger)
}
