package command

import (
	"fmt"

	"storerating/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default admin, store owner and user accounts",
	Long: `Creates the demo accounts if their emails are not taken yet.
Existing accounts are never modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, log, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db)

		created, err := database.Seed(cmd.Context(), db, log)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		status := color.New(color.FgGreen)
		if created == 0 {
			status = color.New(color.FgYellow)
		}
		status.Fprintf(out, "%d account(s) created\n", created)
		for _, acc := range database.DefaultAccounts {
			fmt.Fprintf(out, "  %-12s %s / %s\n", color.CyanString(string(acc.Role)), acc.Email, acc.Password)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
