package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/rango/postgres"
	"github.com/xy-planning-network/rango/ranger"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations not yet applied",
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	env := environment()
	l := ranger.DefaultLogger(env)

	db, err := ranger.ConnectDB(env)
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	defer closeDB(db)

	l.Info("migrations ran successfully", nil)
	return nil
}

func closeDB(db *postgres.DB) {
	if sqlDB, err := db.DB().DB(); err == nil {
		sqlDB.Close()
	}
}
