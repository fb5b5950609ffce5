package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/sellora-inc/sellora/internal/shared/config"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

// Manager handles database migrations with a pluggable strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a migration manager from configuration. "auto" (the
// default) uses GORM AutoMigrate; "golang_migrate" and "goose" run versioned
// SQL scripts.
func NewManager(cfg *config.MigrationConfig) (*Manager, error) {
	scriptsPath, err := filepath.Abs(cfg.ScriptsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	var strategy Strategy
	switch strings.ToLower(cfg.Strategy) {
	case "", "auto", "gorm_auto_migrate":
		strategy = NewGormAutoMigrateStrategy()
	case "golang_migrate":
		strategy = NewGolangMigrateStrategy(scriptsPath)
	case "goose":
		strategy = NewGooseStrategy(scriptsPath)
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", cfg.Strategy)
	}

	return NewManagerWithStrategy(strategy), nil
}

// NewManagerWithStrategy creates a migration manager with a specific strategy.
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy.
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())

	return nil
}

// GetStrategy returns the current migration strategy.
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
