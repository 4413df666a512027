package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/http/controller"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/http/middleware"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/http/router"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/repository/memory"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/repository/postgres"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/config"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/logger"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/usecase/services"
)

var serveInMemory bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the ledger HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		var (
			accountRepo repo_interfaces.AccountRepository
			holderRepo  repo_interfaces.HolderRepository
			historyRepo repo_interfaces.HistoryRepository
		)

		if serveInMemory {
			store := memory.NewStore()
			accountRepo = memory.NewAccountRepository(store)
			holderRepo = memory.NewHolderRepository(store)
			historyRepo = memory.NewHistoryRepository(store)
		} else {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}

			db, err := postgres.Open(ctx, cfg.DatabaseDSN)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			accountRepo = postgres.NewAccountRepository(db)
			holderRepo = postgres.NewHolderRepository(db)
			historyRepo = postgres.NewHistoryRepository(db)
		}

		ledgerService := services.NewLedgerService(accountRepo, holderRepo, cfg.ClosePolicy)
		historyService := services.NewHistoryService(historyRepo, accountRepo)
		reportService := services.NewReportService(accountRepo, historyRepo)

		authMiddleware := middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKeyHash)
		mux := router.New(
			controller.NewAccountController(ledgerService, cfg.ClosePolicy),
			controller.NewHistoryController(historyService, ledgerService),
			controller.NewReportController(reportService),
			authMiddleware,
		)

		logger.Info("ledger http server starting", logger.Fields{
			"addr":        cfg.HTTPAddr,
			"closePolicy": string(cfg.ClosePolicy),
			"inMemory":    serveInMemory,
		})

		server := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		return server.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveInMemory, "in-memory", false, "run against the in-process store instead of postgres")
}
