// Package migration applies the schema with goose, golang-migrate or gorm
// AutoMigrate, selected by configuration.
package migration

import (
	"embed"
	"fmt"

	"gorm.io/gorm"

	"weiyue/internal/shared/config"
	"weiyue/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

const (
	gooseDir   = "scripts/goose"
	migrateDir = "scripts/migrate"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy named by cfg.Migration.Strategy.
func NewManager(cfg *config.DatabaseConfig) (*Manager, error) {
	strategy, err := NewStrategy(cfg.Migration.Strategy, cfg)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// NewStrategy builds the named strategy for the configured database.
func NewStrategy(name string, cfg *config.DatabaseConfig) (Strategy, error) {
	switch name {
	case StrategyGoose, "":
		return NewGooseStrategy(cfg.Driver)
	case StrategyGolangMigrate:
		return NewGolangMigrateStrategy(cfg)
	case StrategyAuto:
		return NewAutoMigrateStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}

// Up executes the configured migration strategy
func (m *Manager) Up(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Up(db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Down(db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	if err := m.strategy.Down(db, steps); err != nil {
		return fmt.Errorf("down migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

func (m *Manager) Version(db *gorm.DB) (int64, error) {
	return m.strategy.Version(db)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// GetStrategyInfo returns information about the current strategy
func (m *Manager) GetStrategyInfo() map[string]interface{} {
	return map[string]interface{}{
		"name":        m.strategy.GetName(),
		"description": getStrategyDescription(m.strategy.GetName()),
	}
}

func getStrategyDescription(strategyName string) string {
	switch strategyName {
	case StrategyAuto:
		return "GORM AutoMigrate - Automatic schema migration based on struct definitions"
	case StrategyGolangMigrate:
		return "golang-migrate - Version-controlled SQL migration scripts"
	case StrategyGoose:
		return "goose - Version-controlled SQL migration scripts"
	default:
		return "Unknown migration strategy"
	}
}
