package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/osse101/ArcLab_Go/internal/config"
	"github.com/osse101/ArcLab_Go/internal/database"
)

// NewMigrateCommand creates the migrate command
func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply every pending migration to the configured database. The server
does the same at startup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(ctx, pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msgMigrationsDone)
			return nil
		},
	}

	return cmd
}

// NewSetupCommand creates the setup command
func NewSetupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the database if needed and migrate it",
		Long: `Connect to the server's maintenance database, create DB_NAME when it
does not exist yet, then apply every migration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			cfg, err := config.LoadForTools()
			if err != nil {
				return fmt.Errorf(errMsgLoadConfig, err)
			}

			created, err := ensureDatabase(ctx, maintenanceConnString(cfg), cfg.DBName)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), msgDatabaseCreated, cfg.DBName)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), msgDatabaseExists, cfg.DBName)
			}

			pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{MaxConns: 2})
			if err != nil {
				return fmt.Errorf(errMsgConnect, err)
			}
			defer pool.Close()

			if err := database.Migrate(ctx, pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msgMigrationsDone)
			return nil
		},
	}

	return cmd
}

// ensureDatabase creates name through the maintenance connection unless it
// already exists. It reports whether it created it.
func ensureDatabase(ctx context.Context, connString, name string) (bool, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return false, fmt.Errorf(errMsgConnect, err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf(errMsgCheckDatabase, name, err)
	}
	if exists {
		return false, nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return false, fmt.Errorf(errMsgCreateDatabase, name, err)
	}
	return true, nil
}

// maintenanceConnString points the configured server at the postgres database
func maintenanceConnString(cfg *config.Config) string {
	u, err := url.Parse(cfg.GetDBConnString())
	if err != nil {
		return cfg.GetDBConnString()
	}
	u.Path = "/" + maintenanceDB
	return u.String()
}
