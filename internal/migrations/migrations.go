package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// schemaFiles holds the posts and statistic_snapshots schema, one numbered
// up/down pair per change.
//
//go:embed *.sql
var schemaFiles embed.FS

// migrationsTable is where golang-migrate records the applied schema version.
const migrationsTable = "poststats_schema_migrations"

// RunMigrations brings the posts and statistic_snapshots tables up to the
// embedded schema version. With autoMigrate off it reports how far behind the
// database is and changes nothing.
func RunMigrations(db *sql.DB, autoMigrate bool) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	current, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read poststats schema version: %w", err)
	}

	if dirty {
		slog.Warn("[Migrations] Poststats schema left dirty by an interrupted migration",
			"version", current,
			"action", "re-running from previous version",
		)
		// Up files use IF NOT EXISTS, so repeating the interrupted one is harmless.
		if err := m.Force(recoveryVersion(current)); err != nil {
			return fmt.Errorf("reset dirty poststats schema at version %d: %w", current, err)
		}
	}

	pending, err := pendingVersions(schemaFiles, current)
	if err != nil {
		return err
	}

	if !autoMigrate {
		if len(pending) > 0 {
			slog.Warn("[Migrations] Poststats schema is behind, auto-migration disabled",
				"current_version", current,
				"pending", pending,
			)
		}
		return nil
	}

	if len(pending) == 0 && !dirty {
		slog.Info("[Migrations] Posts and snapshot tables already current", "version", current)
		return nil
	}

	slog.Info("[Migrations] Applying poststats schema changes",
		"current_version", current,
		"pending", pending,
	)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply poststats schema: %w", err)
	}

	applied, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("read poststats schema version after upgrade: %w", err)
	}
	slog.Info("[Migrations] Posts and snapshot tables ready",
		"from_version", current,
		"to_version", applied,
	)
	return nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(schemaFiles, ".")
	if err != nil {
		return nil, fmt.Errorf("open embedded poststats schema: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return nil, fmt.Errorf("open postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create poststats migrator: %w", err)
	}
	return m, nil
}

// pendingVersions lists the embedded up migrations newer than current, ascending.
func pendingVersions(files fs.FS, current uint) ([]uint, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("list embedded poststats schema: %w", err)
	}

	var pending []uint
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("schema file %q has no version prefix", name)
		}
		v, err := strconv.ParseUint(prefix, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("schema file %q: %w", name, err)
		}
		if uint(v) > current {
			pending = append(pending, uint(v))
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i] < pending[j] })
	return pending, nil
}

// recoveryVersion is the version to force when version is dirty.
// -1 tells golang-migrate that no migration has been applied.
func recoveryVersion(version uint) int {
	if version <= 1 {
		return -1
	}
	return int(version) - 1
}
