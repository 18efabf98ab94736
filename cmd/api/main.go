package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"review_pulse/internal/adapters/appstore"
	server "review_pulse/internal/adapters/http_server"
	"review_pulse/internal/adapters/memstore"
	"review_pulse/internal/adapters/observability"
	openaiad "review_pulse/internal/adapters/openai"
	redisad "review_pulse/internal/adapters/redis"
	"review_pulse/internal/app"
	"review_pulse/internal/domain"
	"review_pulse/internal/shared"
	"review_pulse/internal/textproc"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// batch store: Redis when configured, process-local otherwise
	var store domain.BatchStore
	if cfg.RedisAddr != "" {
		store = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.CacheTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis batch store")
	} else {
		store = memstore.New()
		log.Info().Msg("using in-memory batch store")
	}

	analyzer := textproc.NewAnalyzer()
	if cfg.LexiconPath != "" {
		a, err := textproc.NewAnalyzerFromFile(cfg.LexiconPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.LexiconPath).Msg("sentiment lexicon failed to load")
		}
		analyzer = a
	}

	feed := appstore.New(cfg.FeedBase, cfg.FeedCountry, cfg.FeedRPS)
	ingest := app.NewIngestionService(feed, store, cfg.MaxPages)
	analysis := app.NewAnalysisService(store, openaiad.NewInsights(cfg.OpenAIKey), analyzer)
	if cfg.OpenAIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is empty; AI insights will degrade to a placeholder")
	}

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Ingest: ingest, Analysis: analysis})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
