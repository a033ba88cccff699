package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"pet-adoptions/docs"
	"pet-adoptions/internal/adapters/storage"
	"pet-adoptions/internal/config"
	"pet-adoptions/internal/domain/mocks"
	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/router"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el servidor HTTP",
	RunE:  runServe,
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
		File:   cfg.Log.File,
	})
	return cfg, log, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg.Storage, log.With(map[string]any{"component": "storage"}))
	if err != nil {
		log.Error("storage open failed", map[string]any{"driver": cfg.Storage.Driver, "error": err.Error()})
		return err
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			log.Warn("storage close failed", map[string]any{"error": err.Error()})
		}
	}()

	docs.SwaggerInfo.BasePath = cfg.Server.BasePath
	if docs.SwaggerInfo.BasePath == "" {
		docs.SwaggerInfo.BasePath = "/"
	}

	r := router.NewRouter(router.Options{
		Backend:  backend,
		Logger:   log,
		BasePath: cfg.Server.BasePath,
		Mocks: mocks.Options{
			Users:       cfg.Mocks.Users,
			Pets:        cfg.Mocks.Pets,
			MaxGenerate: cfg.Mocks.MaxGenerate,
		},
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": backend.Name})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err.Error()})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.Server.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}
