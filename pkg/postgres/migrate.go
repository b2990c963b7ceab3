package postgres

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // register postgres driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // register file source driver
)

// MigrationSource turns a migrations directory into a golang-migrate source URL.
// Values that already carry a scheme are returned unchanged.
func MigrationSource(dir string) (string, error) {
	if strings.Contains(dir, "://") {
		return dir, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("postgres: resolve migrations dir %q: %w", dir, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// RunMigrations applies all pending up migrations found at source
// (e.g. "file:///srv/migrations"). Having nothing to apply is not an error.
func RunMigrations(dsn string, source string) error {
	m, err := migrate.New(source, dsn)
	if err != nil {
		return fmt.Errorf("postgres: create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("postgres: run migrations up: %w", err)
	}

	return nil
}
