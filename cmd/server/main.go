package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alencarrgabriel/GeradorRecibos/internal/config"
	"github.com/alencarrgabriel/GeradorRecibos/internal/infra"
	"github.com/alencarrgabriel/GeradorRecibos/internal/repository"
	"github.com/alencarrgabriel/GeradorRecibos/internal/router"
	"github.com/alencarrgabriel/GeradorRecibos/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Worker pool for async tasks (closing report PDF + email). Wired here,
	// at the composition root, so the workers see the same repositories and
	// infrastructure as the HTTP layer.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	pdfGen := infra.NewPDFGenerator(cfg.PDFStoragePath)
	dispatcher := worker.NewDispatcher(rdb)

	sessaoRepo := repository.NewSessaoRepository(db)
	gavetaRepo := repository.NewGavetaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	movRepo := repository.NewMovimentacaoRepository(db)

	processors := map[string]worker.Processor{
		worker.QueueFechamento: worker.NewFechamentoWorker(
			sessaoRepo, gavetaRepo, usuarioRepo, movRepo,
			pdfGen, dispatcher, cfg.RelatorioEmail,
		),
		worker.QueueEmail: worker.NewEmailWorker(mailer),
	}
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, processors)

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("GeradorRecibos backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
