// Command httpd runs the comment-pulse HTTP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonesrussell/comment-pulse/internal/api"
	"github.com/jonesrussell/comment-pulse/internal/classifier"
	"github.com/jonesrussell/comment-pulse/internal/config"
	"github.com/jonesrussell/comment-pulse/internal/logger"
	"github.com/jonesrussell/comment-pulse/internal/pipeline"
	"github.com/jonesrussell/comment-pulse/internal/preprocess"
	"github.com/jonesrussell/comment-pulse/internal/sentiment"
	"github.com/jonesrussell/comment-pulse/internal/spell"
	"github.com/jonesrussell/comment-pulse/internal/telemetry"
	"github.com/jonesrussell/comment-pulse/internal/youtube"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "comment-pulse: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting comment-pulse",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug))

	tp := telemetry.NewProvider()

	// Engines are built once and shared for the process lifetime.
	corrector := preprocess.NewSelectiveCorrector(spell.New(), log)
	clf := classifier.New(cfg.Analysis, log)
	scorer := sentiment.NewScorer(sentiment.DefaultEngine(), cfg.Analysis, log)

	p := pipeline.New(corrector, clf, scorer, cfg.Analysis, tp, log)
	fetcher := youtube.NewClient(cfg.YouTube, tp, log)
	handler := api.NewHandler(fetcher, p, cfg, log)
	server := api.NewServer(handler, cfg, tp, log)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case sig := <-sigChan:
		log.Info("received signal", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("comment-pulse stopped")
	return nil
}
