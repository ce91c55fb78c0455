package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
)

// PoolStatsRecorder receives periodic connection pool snapshots
type PoolStatsRecorder interface {
	RecordPoolStats(stats sql.DBStats)
}

// ConnectionPoolMonitor samples the database connection pool
type ConnectionPoolMonitor struct {
	db       *gorm.DB
	logger   coreport.Logger
	recorder PoolStatsRecorder

	mutex    sync.RWMutex
	last     sql.DBStats
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor; recorder may be nil
func NewConnectionPoolMonitor(db *gorm.DB, logger coreport.Logger, recorder PoolStatsRecorder) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		recorder: recorder,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start samples once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collect(); err != nil {
		close(m.done)
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer close(m.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collect(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()
	return nil
}

// Stop stops sampling and waits for the sampler to exit
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
	<-m.done
}

// Stats returns the last sampled pool statistics
func (m *ConnectionPoolMonitor) Stats() sql.DBStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.last
}

func (m *ConnectionPoolMonitor) collect() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()

	m.mutex.Lock()
	m.last = stats
	m.mutex.Unlock()

	if m.recorder != nil {
		m.recorder.RecordPoolStats(stats)
	}

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
	return nil
}
