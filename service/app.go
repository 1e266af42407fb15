package service

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cosmicdevspace/app/config"
	"cosmicdevspace/app/routes"
	"cosmicdevspace/pkg/logger"

	"github.com/dgraph-io/badger/v4"
)

// RunAppServer starts the Cosmic DevSpace API server
func RunAppServer(args []string) {
	log := logger.New()
	cfg := config.Load()

	if cfg.Database.Path != "" {
		dbPath = cfg.Database.Path
	}
	if cfg.Database.BackupDir != "" {
		backupDir = cfg.Database.BackupDir
	}

	opts := badger.DefaultOptions(dbPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	router := routes.SetupRoutes(db, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting Cosmic DevSpace API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
