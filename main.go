package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/fanfic/adapters/hasher"
	httpadapter "github.com/satriahrh/fanfic/adapters/http"
	"github.com/satriahrh/fanfic/adapters/language"
	"github.com/satriahrh/fanfic/adapters/llm"
	"github.com/satriahrh/fanfic/adapters/metrics"
	"github.com/satriahrh/fanfic/config"
	"github.com/satriahrh/fanfic/usecase"
	"github.com/satriahrh/fanfic/utils/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}
	if err := log.Init(cfg.Debug); err != nil {
		stdlog.Fatalf("Failed to init logger: %v", err)
	}
	defer log.Sync()

	languages, err := language.Load(cfg.LanguagesFile, cfg.DefaultLanguage)
	if err != nil {
		log.With().Fatal("Failed to load language table", zap.Error(err))
	}

	generator, err := llm.New(context.Background(), cfg.LLM)
	if err != nil {
		log.With().Fatal("Failed to create generation client", zap.Error(err))
	}

	m := metrics.New()
	svc := usecase.NewStoryService(generator, languages,
		usecase.WithHasher(hasher.New(12)),
		usecase.WithObserver(m),
	)
	handler := httpadapter.NewStoryHandler(svc, usecase.NewValidator(cfg.MinCharacters), cfg.GenerationTimeout, cfg.MaxConcurrent)

	e := httpadapter.NewRouter(httpadapter.RouterConfig{
		RateLimit:   cfg.RateLimit,
		BodyLimit:   cfg.BodyLimit,
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     m.Handler(),
	}, handler)
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = cfg.GenerationTimeout + 10*time.Second

	go func() {
		log.With().Info("Starting server",
			zap.String("addr", cfg.Addr()),
			zap.String("provider", cfg.LLM.Provider),
			zap.String("default_language", languages.Default().Name),
		)
		log.With().Info("Available endpoints: GET /, POST /fanfic, GET /api/v1/health, GET /metrics")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.With().Fatal("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.With().Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.GenerationTimeout+5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.With().Error("Shutdown failed", zap.Error(err))
	}
}
