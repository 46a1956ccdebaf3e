package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/komo3344/airbnb-backend/config"
	"github.com/komo3344/airbnb-backend/cron"
	"github.com/komo3344/airbnb-backend/events"
	"github.com/komo3344/airbnb-backend/handlers"
	"github.com/komo3344/airbnb-backend/middleware"
	"github.com/komo3344/airbnb-backend/routes"
	"github.com/komo3344/airbnb-backend/services/booking"
	"github.com/komo3344/airbnb-backend/services/tasks"
	"github.com/komo3344/airbnb-backend/services/user"
	"github.com/komo3344/airbnb-backend/services/wishlist"
	"github.com/komo3344/airbnb-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var (
		migrateUp  bool
		withWorker bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(migrateUp, withWorker)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run PostgreSQL migrations on startup")
	cmd.Flags().BoolVar(&withWorker, "worker", false, "process reminder tasks in this process")
	return cmd
}

func serve(migrateUp, withWorker bool) error {
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := openStores(ctx, config.AppConfig.StoreBackend, migrateUp, logger)
	if err != nil {
		return err
	}
	defer st.close()

	if err := utils.InitRedis(); err != nil {
		return err
	}
	defer utils.CloseRedis()
	if cache := utils.GetCacheClient(); cache != nil {
		st.pingers["redis"] = func(ctx context.Context) error { return cache.Ping(ctx).Err() }
	}

	media, err := utils.Cloudinary()
	if err != nil {
		return err
	}
	if media == nil {
		logger.Warn("Cloudinary is not configured, photo uploads are disabled")
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if config.AppConfig.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(config.AppConfig.AMQPURL, config.AppConfig.AMQPExchange)
		if err != nil {
			return err
		}
		publisher = p
	}
	defer publisher.Close()

	loc := config.Location()
	bookingService := &booking.DefaultBookingService{
		Reservations: st.reservations,
		Rooms:        st.rooms,
		Experiences:  st.experiences,
		Events:       publisher,
		PageSize:     config.PageSize(),
		Logger:       logger,
	}
	if config.AppConfig.RedisAddr != "" {
		queue := asynq.NewClient(tasks.RedisOpt())
		defer queue.Close()
		bookingService.Reminders = &tasks.ReminderScheduler{
			Queue:    queue,
			Location: loc,
			Lead:     config.ReminderLead(),
		}
		if withWorker {
			go func() {
				if err := cron.RunReminderWorker(ctx, tasks.RedisOpt(), logger); err != nil {
					logger.Error("Reminder worker exited", zap.Error(err))
				}
			}()
		}
	} else {
		logger.Warn("REDIS_ADDR is not set, booking reminders are disabled")
	}

	userService := &user.DefaultUserService{
		Repo:      st.users,
		AuthCache: utils.GetAuthCacheClient(),
		TokenTTL:  config.TokenTTL(),
	}
	listingService := st.listings(media, config.PageSize())
	wishlistService := &wishlist.DefaultWishlistService{
		Lists:       st.wishlists,
		Rooms:       st.rooms,
		Experiences: st.experiences,
		Logger:      logger,
	}

	handlerBundle := handlers.NewHandlerBundle(
		st.users,
		utils.GetAuthCacheClient(),
		handlers.NewUserHandler(userService),
		handlers.NewListingHandler(listingService),
		handlers.NewBookingHandler(bookingService, loc),
		handlers.NewWishlistHandler(wishlistService),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(ctx, 30*time.Second, st.pingers)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("store", config.AppConfig.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("Server is shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped gracefully")
	return nil
}
