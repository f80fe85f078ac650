package gormstore

import (
	"fmt"
	"log/slog"

	"github.com/clubops/checkin-api/internal/config"
	"github.com/clubops/checkin-api/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Info("running database migration",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Dependency order: independent tables first, referencing tables after
	models := []interface{}{
		&model.Member{},
		&model.Session{},
		&model.CheckIn{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("table migrated", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
