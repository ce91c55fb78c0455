package database

import (
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
)

// QueryRecorder receives one observation per executed statement
type QueryRecorder interface {
	ObserveQuery(operation, table string, duration time.Duration, failed bool)
}

const (
	queryStartKey = "i2c:query_start"
	querySpanKey  = "i2c:query_span"
	tracerName    = "github.com/amirhossein-jamali/image2code-backend/database"
)

// QueryMonitor is a gorm plugin that times statements and wraps each in a span
type QueryMonitor struct {
	recorder     QueryRecorder
	timeProvider coreport.TimeProvider
	tracer       trace.Tracer
}

// NewQueryMonitor creates a query monitor; recorder may be nil
func NewQueryMonitor(recorder QueryRecorder, timeProvider coreport.TimeProvider) *QueryMonitor {
	return &QueryMonitor{
		recorder:     recorder,
		timeProvider: timeProvider,
		tracer:       otel.Tracer(tracerName),
	}
}

// Name implements gorm.Plugin
func (m *QueryMonitor) Name() string {
	return "i2c:query_monitor"
}

// Initialize implements gorm.Plugin
func (m *QueryMonitor) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		operation string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, h := range hooks {
		if err := h.before("i2c:before_"+h.operation, m.before(h.operation)); err != nil {
			return err
		}
		if err := h.after("i2c:after_"+h.operation, m.after(h.operation)); err != nil {
			return err
		}
	}
	return nil
}

func (m *QueryMonitor) before(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		db.InstanceSet(queryStartKey, m.timeProvider.Now())

		ctx := db.Statement.Context
		if ctx == nil {
			return
		}
		ctx, span := m.tracer.Start(ctx, "db."+operation,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("db.system", "postgresql")),
		)
		db.Statement.Context = ctx
		db.InstanceSet(querySpanKey, span)
	}
}

func (m *QueryMonitor) after(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		failed := db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound)
		table := db.Statement.Table

		if v, ok := db.InstanceGet(querySpanKey); ok {
			if span, ok := v.(trace.Span); ok {
				span.SetAttributes(
					attribute.String("db.sql.table", table),
					attribute.Int64("db.rows_affected", db.RowsAffected),
				)
				if failed {
					span.RecordError(db.Error)
					span.SetStatus(codes.Error, db.Error.Error())
				}
				span.End()
			}
		}

		if m.recorder == nil {
			return
		}
		v, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		m.recorder.ObserveQuery(operation, table, m.timeProvider.Since(start).Std(), failed)
	}
}
