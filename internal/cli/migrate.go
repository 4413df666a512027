package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/repository/postgres"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		cmd.Println("migrations completed successfully")
		return nil
	},
}
