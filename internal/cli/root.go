package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcLab_Go/internal/logger"
)

var (
	// Global flags
	verbose    bool
	jsonOutput bool
	region     string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arclab",
		Short: "ArcLab CLI - manage the item catalog and plan loadouts",
		Long: `ArcLab CLI works with catalog documents and the ArcLab database.

Catalog locations are local file paths or s3://bucket/key URLs.
Database settings come from the same DB_* environment variables and
.env file the server reads.

Examples:
  arclab validate data/catalog.json
  arclab plan data/catalog.json "Heavy Ammo=120" "Bandage=10"
  arclab plan --stacks data/catalog.json "Metal Plate=3"
  arclab import s3://arc-data/catalog.json --force
  arclab setup
  arclab migrate
  arclab check-env`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLoggerWithWriter(logger.CLIConfig(verbose), cmd.ErrOrStderr())
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Print results as JSON")
	rootCmd.PersistentFlags().StringVar(&region, "region", os.Getenv("AWS_REGION"),
		"AWS region for s3:// catalog locations")

	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewMigrateCommand())
	rootCmd.AddCommand(NewSetupCommand())
	rootCmd.AddCommand(NewCheckEnvCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
