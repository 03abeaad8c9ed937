package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/rango/ranger"
	"github.com/xy-planning-network/rango/seed"
	"github.com/xy-planning-network/rango/store"
)

// NewPopulateCommand creates the populate command.
func NewPopulateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "populate",
		Short: "Fill the database with the starter categories and pages",
		Long: `Populate creates the Python, Django and Other Frameworks categories with their pages.
Running it again updates those rows rather than duplicating them.`,
		RunE: runPopulate,
	}
}

func runPopulate(cmd *cobra.Command, args []string) error {
	env := environment()
	l := ranger.DefaultLogger(env)
	l.Info("starting Rango population script...", nil)

	db, err := ranger.ConnectDB(env)
	if err != nil {
		return fmt.Errorf("failed to populate: %w", err)
	}
	defer closeDB(db)

	if err := seed.Populate(cmd.Context(), store.New(db), l); err != nil {
		return fmt.Errorf("failed to populate: %w", err)
	}

	return nil
}
