package command

// root.go defines the storectl root command and the shared setup its
// subcommands use to reach the database.

import (
	"context"
	"fmt"
	"os"

	"storerating/database"
	"storerating/internal/config"
	"storerating/internal/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var databaseURL string

var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "storectl - Store Rating administration tool",
	Long: `storectl manages the Store Rating database:
- apply or roll back schema migrations
- report the current schema version
- create the default demo accounts

Connection settings come from the same environment (and .env file) as the API server.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres URL (overrides DATABASE_URL)")
}

// connect loads config, applies flag overrides and opens the pool. The caller
// closes the returned db.
func connect(ctx context.Context) (*gorm.DB, *logger.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}

	log := logger.New(logger.Options{
		ServiceName: "storectl",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      "console",
		Output:      os.Stderr,
	})

	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return db, log, nil
}
