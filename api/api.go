package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcservice "leaguestats/api/grpc"
	"leaguestats/api/modules"
	"leaguestats/api/routes"
	"leaguestats/pkg/config"
	"leaguestats/pkg/logger"
	"leaguestats/pkg/redis"
	"leaguestats/scheduler"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using the environment")
		}
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// Run the servers until a signal arrives or one of them fails.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("couldn't initialize the configuration: %w", err)
	}

	logger, err := logger.CreateLogger(cfg)
	if err != nil {
		return fmt.Errorf("couldn't create the logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := &modules.ModuleDependencies{
		Config: cfg,
		Logger: logger,
	}
	if cfg.RedisEnabled() {
		redisClient, err := redis.NewClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("couldn't connect to redis: %w", err)
		}
		defer redisClient.Close()
		deps.Redis = redisClient
	} else {
		logger.Warnf("REDIS_HOST not set, summaries are cached in memory")
	}

	// Create a module with all necessary handlers.
	module, err := modules.NewModule(deps)
	if err != nil {
		return fmt.Errorf("couldn't start the module: %w", err)
	}

	// Background jobs.
	s, err := scheduler.NewScheduler(&scheduler.SchedulerDeps{
		Config:   cfg,
		Logger:   logger,
		Uploader: logger,
		Stats:    module.CacheStats,
		Service:  "api",
	})
	if err != nil {
		return fmt.Errorf("couldn't create the scheduler: %w", err)
	}
	s.Start()
	defer func() {
		if err := s.Shutdown(); err != nil {
			logger.Errorf("Error shutting down scheduler: %v", err)
		}
	}()

	// Create a new router with the routes setup.
	module.Router.Use(routes.RequestId(), routes.RequestLogger(logger))
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.SummaryHandler,
		module.HealthHandler,
	)
	router.SetupMetrics(module.MetricsHandler)

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: router.Engine,
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.GRPCAddr, err)
	}
	grpcServer := grpcservice.NewGRPCServer(module.SummaryServer)

	errs := make(chan error, 2)
	go func() {
		logger.Infof("HTTP server listening on %s", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	go func() {
		logger.Infof("gRPC server listening on %s", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			errs <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Infof("Shutting down...")
	case serveErr = <-errs:
		logger.Errorf("Server failed: %v", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error shutting down the HTTP server: %v", err)
	}
	return serveErr
}
