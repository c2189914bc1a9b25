package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rdtrack/internal/config"
	"rdtrack/internal/handler"
	"rdtrack/internal/httpserver"
	"rdtrack/internal/mqhandler"
	"rdtrack/internal/repository"
	"rdtrack/internal/service"
	"rdtrack/pkg/db"
	"rdtrack/pkg/logger"
	"rdtrack/pkg/mq"
	"rdtrack/pkg/redis"
	"rdtrack/pkg/util"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting rdtrack...",
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
		zap.String("mq_url", cfg.MQ.URL),
		zap.String("http_port", cfg.Server.Port),
	)

	// DB
	log.Info("Initializing database connection...")
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()

	// Redis
	rdb := redis.NewClient(cfg.Redis)
	defer rdb.Close()

	// MQ Publisher
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("Failed to init MQ publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Repositories
	projectRepo := repository.NewProjectRepository(dbConn, log)
	taskRepo := repository.NewTaskRepository(dbConn, log)
	userRepo := repository.NewUserRepository(dbConn, log)

	// Notification refresher
	deduper := util.NewDeduper(rdb, cfg.Insight.DedupTTL(), log)
	refresher := service.NewRefresher(projectRepo, taskRepo, userRepo, publisher, deduper, log)

	refresherCtx, refresherCancel := context.WithCancel(context.Background())
	defer refresherCancel()

	go func() {
		log.Info("Starting notification refresher...",
			zap.Duration("interval", cfg.Insight.RefreshInterval()),
		)
		refresher.Run(refresherCtx, cfg.Insight.RefreshInterval())
	}()

	// MQ Consumer for project.stage_advanced
	stageAdvancedHandler := mqhandler.NewStageAdvancedHandler(projectRepo, log)
	stageConsumer, err := mq.NewConsumer(cfg.MQ.URL, "project.stage_advanced.q", mq.RoutingKeyProjectStageAdvanced, log)
	if err != nil {
		log.Fatal("Failed to init stage_advanced consumer", zap.Error(err))
	}
	defer stageConsumer.Close()

	stageConsumer.SetHandler(stageAdvancedHandler.Handle)

	go func() {
		log.Info("Starting project.stage_advanced consumer...")
		if err := stageConsumer.StartConsuming(); err != nil {
			log.Fatal("stage_advanced consumer failed", zap.Error(err))
		}
	}()

	// MQ Consumer for task.created
	taskCreatedHandler := mqhandler.NewTaskCreatedHandler(taskRepo, log)
	taskConsumer, err := mq.NewConsumer(cfg.MQ.URL, "task.created.q", mq.RoutingKeyTaskCreated, log)
	if err != nil {
		log.Fatal("Failed to init task_created consumer", zap.Error(err))
	}
	defer taskConsumer.Close()

	taskConsumer.SetHandler(taskCreatedHandler.Handle)

	go func() {
		log.Info("Starting task.created consumer...")
		if err := taskConsumer.StartConsuming(); err != nil {
			log.Fatal("task_created consumer failed", zap.Error(err))
		}
	}()

	// HTTP Server
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	authHandler := handler.NewAuthHandler(authService, log)
	projectHandler := handler.NewProjectHandler(projectRepo, log)
	taskHandler := handler.NewTaskHandler(taskRepo, log)
	notificationHandler := handler.NewNotificationHandler(refresher, projectRepo, taskRepo, log)

	router := httpserver.NewRouter(
		authHandler,
		projectHandler,
		taskHandler,
		notificationHandler,
		cfg.JWT.Secret,
		log,
		dbConn,
		publisher,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("rdtrack is fully initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down rdtrack gracefully...")

	refresherCancel()

	log.Info("Stopping MQ consumers...")
	stageConsumer.Stop()
	taskConsumer.Stop()

	log.Info("Shutting down HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("rdtrack shutdown complete")
}
