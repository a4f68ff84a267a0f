package migration

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/afero"

	"weiyue/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator writes new migration scripts for both script trees.
type Generator struct {
	fs          afero.Fs
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator creates a generator rooted at scriptsPath on the local disk.
func NewGenerator(scriptsPath string) *Generator {
	return newGenerator(afero.NewOsFs(), scriptsPath)
}

func newGenerator(fs afero.Fs, scriptsPath string) *Generator {
	return &Generator{
		fs:          fs,
		scriptsPath: scriptsPath,
		logger:      logger.WithComponent("migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration writes a goose script and a golang-migrate up/down pair
// sharing one timestamp version. It returns the created paths.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	if !migrationNamePattern.MatchString(name) {
		return nil, fmt.Errorf("migration name must match %s", migrationNamePattern)
	}

	timestamp := g.now().Format("20060102150405")
	created := g.now().Format(time.DateTime)

	files := map[string]string{
		filepath.Join(g.scriptsPath, "goose", fmt.Sprintf("%s_%s.sql", timestamp, name)): fmt.Sprintf(
			"-- Migration: %s\n-- Created: %s\n\n-- +goose Up\n\n-- +goose Down\n", name, created),
		filepath.Join(g.scriptsPath, "migrate", fmt.Sprintf("%s_%s.up.sql", timestamp, name)): fmt.Sprintf(
			"-- Migration: %s\n-- Created: %s\n", name, created),
		filepath.Join(g.scriptsPath, "migrate", fmt.Sprintf("%s_%s.down.sql", timestamp, name)): fmt.Sprintf(
			"-- Rollback Migration: %s\n-- Created: %s\n", name, created),
	}

	paths := make([]string, 0, len(files))
	for path, content := range files {
		if err := g.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create scripts directory: %w", err)
		}
		exists, err := afero.Exists(g.fs, path)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("migration file already exists: %s", path)
		}
		if err := afero.WriteFile(g.fs, path, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	g.logger.Infow("migration files created successfully", "files", paths)
	return paths, nil
}
