package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/config"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/api/handler"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/api/router"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dataset"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/repository"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/service"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/session"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/database"
	applogger "github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/logger"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/redis"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting eduaid server",
		zap.Int("port", cfg.Server.Port),
		zap.String("dataset", cfg.Dataset.Path),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Open the in-memory dataset database
	db, err := database.NewDB(logger)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	// 4. Import the College Scorecard dataset. A missing or empty file is
	//    fatal: there is nothing to serve without it.
	repo := repository.NewRepository(db)
	loader := dataset.NewLoader(cfg.Dataset.Path, cfg.Dataset.RefreshTTL, db, repo.School, logger)
	if err := loader.Reload(context.Background()); err != nil {
		logger.Fatal("failed to load college dataset", zap.Error(err))
	}

	// 5. Connect Redis (optional: selections fall back to process memory)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory session store", zap.Error(err))
		rdb = nil
	}

	var selections session.Store
	if rdb != nil {
		selections = session.NewRedisStore(rdb)
	} else {
		selections = session.NewMemoryStore()
	}

	// 6. Dependency injection: Repository -> Service -> Handler
	svc := service.NewService(cfg, repo, loader, selections, logger)
	h := handler.NewHandler(svc)

	// 7. Router
	engine := router.Setup(cfg, h, rdb, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	// 9. Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	if sqlDB, _ := db.DB(); sqlDB != nil {
		sqlDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
