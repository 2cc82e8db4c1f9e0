package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcLab_Go/internal/config"
)

// NewCheckEnvCommand creates the check-env command
func NewCheckEnvCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-env",
		Short: "Check the environment the server would start with",
		Long: `Verify the .env schema version and the required variables, and warn
about example values that were never changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// populates the environment from .env
			_, _ = config.LoadForTools()

			warnings, err := config.ValidateEnvWithWarnings()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range warnings {
				fmt.Fprintf(out, msgEnvWarning, w)
			}
			if len(warnings) == 0 {
				fmt.Fprintln(out, msgEnvOK)
			}
			return nil
		},
	}

	return cmd
}
