package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"covid19-tracker-service/internal/config"
	"covid19-tracker-service/internal/diseaseapi"
	"covid19-tracker-service/internal/handler"
	"covid19-tracker-service/internal/service"

	"emperror.dev/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const redisPingTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	var (
		clientOpts   []diseaseapi.Option
		cacheHandler *handler.CacheHandler
	)

	// Shared response cache, only when redis is configured
	if config.AppConfig.RedisAddress != "" {
		redisClient, err := connectRedis(&redis.Options{
			Addr:     config.AppConfig.RedisAddress,
			Password: config.AppConfig.RedisPassword,
		}, redisPingTimeout)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		responseCache := service.NewRedisResponseCache(redisClient, config.AppConfig.CacheTTL)
		clientOpts = append(clientOpts, diseaseapi.WithCache(responseCache))
		cacheHandler = handler.NewCacheHandler(responseCache)
	} else {
		logrus.Info("REDIS_ADDRESS not set, running without a shared response cache")
	}

	client := newClient(clientOpts...)

	// Initialize services
	statsService := service.NewStatsService(client)
	sessions := service.NewSessionStore(client, config.AppConfig.SessionTTL)

	// Initialize handlers
	statsHandler := handler.NewStatsHandler(statsService)
	dashboardHandler := handler.NewDashboardHandler(sessions)

	app := handler.NewApp(true)
	handler.SetupRoutes(app, statsHandler, dashboardHandler, cacheHandler)

	// Graceful shutdown channel
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(":" + config.AppConfig.ServerPort)
	}()

	logrus.Infof("Server started on port %s", config.AppConfig.ServerPort)

	// Wait for interrupt signal
	select {
	case <-shutdownChan:
	case err := <-listenErr:
		return errors.WrapIf(err, "server error")
	}
	logrus.Info("Shutting down server...")

	// Cleanup and shutdown
	return errors.WrapIf(app.Shutdown(), "server shutdown error")
}

// connectRedis opens a client and pings it, giving up after timeout.
// Commands honour context deadlines on the returned client.
func connectRedis(opts *redis.Options, timeout time.Duration) (*redis.Client, error) {
	opts.ContextTimeoutEnabled = true
	redisClient := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Verify Redis connection
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, errors.WrapIfWithDetails(err, "failed to connect to redis", "address", opts.Addr)
	}
	return redisClient, nil
}
