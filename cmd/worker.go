package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/komo3344/airbnb-backend/config"
	"github.com/komo3344/airbnb-backend/cron"
	"github.com/komo3344/airbnb-backend/services/tasks"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/spf13/cobra"
)

var errNoRedis = errors.New("REDIS_ADDR is not set")

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Process booking reminder tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.AppConfig.RedisAddr == "" {
				return errNoRedis
			}
			logger := utils.GetLogger()
			defer logger.Sync()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return cron.RunReminderWorker(ctx, tasks.RedisOpt(), logger)
		},
	}
}
