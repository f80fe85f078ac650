// Package gormstore is the relational Entity Store adapter. Uniqueness of the
// (session, member) check-in pair is structural: a composite unique index
// rejects the second insert, so duplicate detection is correct by
// construction without any pre-query.
package gormstore

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/clubops/checkin-api/internal/config"
	"github.com/clubops/checkin-api/internal/store"

	oracle "github.com/godoes/gorm-oracle"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Store wraps the GORM database instance
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New creates a new relational store for the configured engine.
// The handle is constructed once at startup and injected into every
// component; there is no ambient global connection.
func New(cfg *config.Config) (*Store, error) {
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger:                 newLogger(cfg),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		TranslateError:         true, // map engine unique violations to gorm.ErrDuplicatedKey
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database connected",
		"engine", cfg.Database.Engine,
		"max_idle_conns", cfg.Database.MaxIdleConns,
		"max_open_conns", cfg.Database.MaxOpenConns,
		"conn_max_lifetime", cfg.Database.ConnMaxLifetime.String(),
	)

	if err := Migrate(db, cfg); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// NewWithDB wraps an existing GORM handle (used by tests with in-memory sqlite).
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Engine {
	case config.EngineSQLite:
		return sqlite.Open(cfg.Path), nil
	case config.EnginePostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
		return postgres.Open(dsn), nil
	case config.EngineOracle:
		// Oracle Cloud ATP needs SSL=true; password must be URL-encoded
		dsn := fmt.Sprintf("oracle://%s:%s@%s:%d/%s?SSL=true",
			cfg.User, url.QueryEscape(cfg.Password), cfg.Host, cfg.Port, cfg.Name)
		return oracle.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unknown database engine %q", cfg.Engine)
	}
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	slog.Info("database connection closed")
	return nil
}

// HealthCheck performs a health check on the database
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return nil
}
