package migration

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb"
)

// Migration represents a database migration
type Migration struct {
	ID        string
	Name      string
	Timestamp time.Time
	UpSQL     string
	DownSQL   string
}

// Runner applies and reverts QuestDB migrations read from a file system.
type Runner struct {
	client questdb.QuestDBClient
	files  fs.FS
	logger logger.Interface
}

// NewRunner creates a new migration runner
func NewRunner(client questdb.QuestDBClient, files fs.FS, logger logger.Interface) *Runner {
	return &Runner{
		client: client,
		files:  files,
		logger: logger,
	}
}

// EnsureMigrationTable creates the schema_migrations table if it doesn't exist
func (r *Runner) EnsureMigrationTable(ctx context.Context) error {
	createTableSQL := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id STRING,
			name STRING,
			applied_at TIMESTAMP
		) TIMESTAMP(applied_at) PARTITION BY DAY;
	`
	if err := r.client.Exec(ctx, createTableSQL); err != nil {
		return errors.NewTracer("failed to create schema_migrations").Wrap(err)
	}
	return nil
}

// GetAppliedMigrations returns a map of applied migration IDs
func (r *Runner) GetAppliedMigrations(ctx context.Context) (map[string]bool, error) {
	applied := make(map[string]bool)

	rows, err := r.client.Query(ctx, "SELECT id FROM schema_migrations ORDER BY applied_at")
	if err != nil {
		return nil, errors.NewTracer("failed to query applied migrations").Wrap(err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.NewTracer("failed to scan migration id").Wrap(err)
		}
		applied[id] = true
	}

	return applied, rows.Err()
}

// LoadMigrations loads every *.up.sql file and its optional *.down.sql pair,
// sorted by file name.
func (r *Runner) LoadMigrations() ([]Migration, error) {
	upFiles, err := fs.Glob(r.files, "*.up.sql")
	if err != nil {
		return nil, err
	}

	sort.Strings(upFiles)

	migrations := make([]Migration, 0, len(upFiles))
	for _, upFile := range upFiles {
		migration, err := r.parseMigrationFiles(upFile)
		if err != nil {
			return nil, errors.NewTracer(fmt.Sprintf("failed to parse migration %s", upFile)).Wrap(err)
		}
		migrations = append(migrations, migration)
	}

	return migrations, nil
}

func (r *Runner) parseMigrationFiles(upFilePath string) (Migration, error) {
	upContent, err := fs.ReadFile(r.files, upFilePath)
	if err != nil {
		return Migration{}, err
	}

	id := strings.TrimSuffix(path.Base(upFilePath), ".up.sql")
	downFilePath := strings.TrimSuffix(upFilePath, ".up.sql") + ".down.sql"

	// file names are YYYYMMDDHHMMSS_name
	name := id
	timestamp := time.Unix(0, 0).UTC()
	if parts := strings.SplitN(id, "_", 2); len(parts) == 2 {
		name = parts[1]
		if ts, err := time.Parse("20060102150405", parts[0]); err == nil {
			timestamp = ts
		}
	}

	var downSQL string
	if downContent, err := fs.ReadFile(r.files, downFilePath); err == nil {
		downSQL = strings.TrimSpace(string(downContent))
	}

	return Migration{
		ID:        id,
		Name:      name,
		Timestamp: timestamp,
		UpSQL:     strings.TrimSpace(string(upContent)),
		DownSQL:   downSQL,
	}, nil
}

// MigrateUp applies pending migrations. steps <= 0 applies all of them.
func (r *Runner) MigrateUp(ctx context.Context, steps int) error {
	migrations, err := r.LoadMigrations()
	if err != nil {
		return err
	}

	applied, err := r.GetAppliedMigrations(ctx)
	if err != nil {
		return err
	}

	var toApply []Migration
	for _, migration := range migrations {
		if !applied[migration.ID] {
			toApply = append(toApply, migration)
		}
	}

	if steps > 0 && len(toApply) > steps {
		toApply = toApply[:steps]
	}

	for _, migration := range toApply {
		if migration.UpSQL == "" {
			r.logger.Warn("migration has no up sql", logger.NewField("id", migration.ID))
			continue
		}

		if err := r.client.Exec(ctx, migration.UpSQL); err != nil {
			return errors.NewTracer(fmt.Sprintf("failed to apply migration %s", migration.ID)).Wrap(err)
		}

		recordSQL := "INSERT INTO schema_migrations VALUES ($1, $2, now())"
		if err := r.client.Exec(ctx, recordSQL, migration.ID, migration.Name); err != nil {
			return errors.NewTracer(fmt.Sprintf("failed to record migration %s", migration.ID)).Wrap(err)
		}

		r.logger.Info("applied migration", logger.NewField("id", migration.ID))
	}

	return nil
}

// MigrateDown reverts the last steps applied migrations.
func (r *Runner) MigrateDown(ctx context.Context, steps int) error {
	if steps <= 0 {
		return errors.NewTracer("steps must be greater than 0 for down migrations")
	}

	migrations, err := r.LoadMigrations()
	if err != nil {
		return err
	}

	applied, err := r.GetAppliedMigrations(ctx)
	if err != nil {
		return err
	}

	var toRevert []Migration
	for i := len(migrations) - 1; i >= 0 && len(toRevert) < steps; i-- {
		if applied[migrations[i].ID] {
			toRevert = append(toRevert, migrations[i])
		}
	}

	for _, migration := range toRevert {
		if migration.DownSQL == "" {
			return errors.NewTracer(fmt.Sprintf("no down sql for migration %s", migration.ID))
		}

		if err := r.client.Exec(ctx, migration.DownSQL); err != nil {
			return errors.NewTracer(fmt.Sprintf("failed to revert migration %s", migration.ID)).Wrap(err)
		}

		if err := r.client.Exec(ctx, "DELETE FROM schema_migrations WHERE id = $1", migration.ID); err != nil {
			return errors.NewTracer(fmt.Sprintf("failed to remove migration record %s", migration.ID)).Wrap(err)
		}

		r.logger.Info("reverted migration", logger.NewField("id", migration.ID))
	}

	return nil
}
