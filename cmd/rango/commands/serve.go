package commands

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/rango/ranger"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server until interrupted",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	rng, err := ranger.New(ranger.WithContext(cmd.Context()), ranger.WithEnv(environment().String()))
	if err != nil {
		return err
	}

	return rng.Guide()
}
