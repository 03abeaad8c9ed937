package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Migration is used to hold the database key and function for creating the migration.
type Migration struct {
	Executor func(*gorm.DB) error
	Key      string
}

func (m Migration) execute(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := m.Executor(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	return nil
}

// MigrateUp runs every Migration in migrations whose key is not yet recorded
// in the migrations table, in order, recording each one after it succeeds.
func MigrateUp(db *gorm.DB, migrations []Migration) error {
	if err := ensureMigrationsTable(db); err != nil {
		return err
	}

	toRun, err := determineMigrationsToRun(db, migrations)
	if err != nil {
		return err
	}

	for _, m := range toRun {
		if err := m.execute(db); err != nil {
			return fmt.Errorf("failed running migration %s: %w", m.Key, err)
		}

		if err := createMigrationRecord(db, m.Key); err != nil {
			return err
		}
	}

	return nil
}

func ensureMigrationsTable(db *gorm.DB) error {
	err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			ran_at bigint,
			key text,
			CONSTRAINT migrations_key UNIQUE (key)
		)
	`).Error
	if err != nil {
		return fmt.Errorf("failed creating migrations table: %w", err)
	}

	return nil
}

func determineMigrationsToRun(db *gorm.DB, all []Migration) ([]Migration, error) {
	var ran []string
	if err := db.Raw("SELECT key FROM migrations;").Scan(&ran).Error; err != nil {
		return nil, fmt.Errorf("failed fetching ran migrations: %w", err)
	}

	if len(ran) == 0 {
		return all, nil
	}

	seen := make(map[string]bool, len(ran))
	for _, key := range ran {
		seen[key] = true
	}

	var toRun []Migration
	for _, m := range all {
		if !seen[m.Key] {
			toRun = append(toRun, m)
		}
	}

	return toRun, nil
}

func createMigrationRecord(db *gorm.DB, key string) error {
	err := db.Exec(`INSERT INTO migrations (key, ran_at) VALUES (?, ?)`, key, time.Now().Unix()).Error
	if err != nil {
		return fmt.Errorf("failed recording migration %s: %w", key, err)
	}

	return nil
}
