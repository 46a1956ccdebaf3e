package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/komo3344/airbnb-backend/config"
	"github.com/komo3344/airbnb-backend/database"
	"github.com/komo3344/airbnb-backend/database/migrations"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := utils.GetLogger()
			defer logger.Sync()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			pool, err := database.OpenPostgres(ctx, config.AppConfig.PostgresURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := migrations.Up(ctx, pool)
			if err != nil {
				return err
			}
			logger.Info("Migrations applied", zap.Strings("files", applied))
			return nil
		},
	}
}
