package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"controle-leiteiro/internal/adapters/auth/supabase"
	pg "controle-leiteiro/internal/adapters/storage/postgres"
	"controle-leiteiro/internal/config"
	"controle-leiteiro/internal/platform/logger"
	"controle-leiteiro/internal/ports/auth"
	"controle-leiteiro/internal/router"
	"controle-leiteiro/internal/scheduler"
)

// @title Controle Leiteiro API
// @version 1.0
// @description API de manejo reprodutivo, produção e sanidade de rebanho leiteiro.
// @BasePath /
func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var verifier auth.AuthVerifier
	if cfg.Supabase.URL != "" {
		client, err := supabase.NewClient(supabase.Config{
			URL:     cfg.Supabase.URL,
			AnonKey: cfg.Supabase.AnonKey,
		})
		if err != nil {
			baseLogger.Fatal("failed to init supabase client", zap.Error(err))
		}
		verifier = supabase.NewVerifier(client)
		baseLogger.Info("supabase auth enabled")
	} else {
		baseLogger.Warn("supabase not configured, dev auth via X-Debug-User-ID")
	}

	svcs := buildServices(cfg, baseLogger)

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Services:     svcs,
	})

	sched := scheduler.NewScheduler(cfg.Digest.CronSchedule, svcs.Animals, svcs.Reproduction, svcs.Alerts, logger.Named(baseLogger, "scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildServices(cfg *config.Config, baseLogger *zap.Logger) *router.Services {
	if cfg.DB.DSN == "" {
		baseLogger.Warn("DB_DSN not set, using in-memory storage")
		return router.NewServices(nil)
	}

	db, err := pg.Open(cfg.DB.DSN)
	if err != nil {
		baseLogger.Fatal("failed to open postgres", zap.Error(err))
	}
	baseLogger.Info("postgres connected")

	return router.NewServices(db)
}
