package command

import (
	"fmt"

	"storerating/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Schema migration commands",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, log, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db)

		return database.Migrate(cmd.Context(), db, log)
	},
}

var downSteps int

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if downSteps < 1 {
			return fmt.Errorf("--steps must be at least 1")
		}
		db, log, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db)

		return database.MigrateDown(cmd.Context(), db, log, downSteps)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db)

		version, dirty, ok, err := database.Version(db)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version %d", version)
		if dirty {
			color.New(color.FgRed).Fprint(cmd.OutOrStdout(), " (dirty)")
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}
