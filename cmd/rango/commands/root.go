package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/rango"
)

var envFlag string

// NewRootCommand creates the root command, which serves the web app.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rango",
		Short:        "Serve the Rango web app",
		Long:         `rango serves categories of links, counting each visitor's visits along the way.`,
		RunE:         runServe,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "Environment to run in; overrides ENVIRONMENT")
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewMigrateCommand())
	rootCmd.AddCommand(NewPopulateCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func environment() rango.Environment {
	if e := rango.Environment(envFlag); e.Valid() == nil {
		return e
	}

	return rango.EnvVarOrEnv("ENVIRONMENT", rango.Development)
}
