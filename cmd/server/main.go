package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agstats/shionweb/internal/api"
	"github.com/agstats/shionweb/internal/config"
	"github.com/agstats/shionweb/internal/db"
	"github.com/agstats/shionweb/internal/i18n"
	"github.com/agstats/shionweb/internal/jobs"
	"github.com/agstats/shionweb/internal/logger"
	"github.com/agstats/shionweb/internal/repository/sqlite"
	"github.com/agstats/shionweb/internal/search"
	"github.com/agstats/shionweb/internal/services"
	"github.com/agstats/shionweb/internal/shion"
	"github.com/agstats/shionweb/internal/worker"
	"github.com/agstats/shionweb/web"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("AG Stats web starting")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("api_base_url=%s", cfg.APIBaseURL)
	log.Debug("asset_prefix=%s", cfg.AssetPrefix)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("http_timeout=%v", cfg.HTTPTimeout)
	log.Debug("search_debounce=%v search_min_chars=%d", cfg.SearchDebounce, cfg.SearchMinChars)
	log.Debug("recent_limit=%d", cfg.RecentLimit)
	log.Debug("worker_count=%d worker_queue_size=%d", cfg.WorkerCount, cfg.WorkerQueueSize)
	log.Debug("default_language=%s", cfg.DefaultLanguage)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	bundle, err := i18n.NewBundle(cfg.DefaultLanguage)
	if err != nil {
		log.Error("failed to load translations: %v", err)
		os.Exit(1)
	}

	tmpl, err := api.LoadTemplates(web.Templates())
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	client := shion.New(cfg.APIBaseURL, shion.WithTimeout(cfg.HTTPTimeout))

	recentRepo := sqlite.NewRecentPlayerRepository(database.DB)
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	queue := jobs.NewWorkerQueue(pool, recentRepo, cfg.RecentLimit)

	searchService := services.NewSearchService(client)

	srv := &api.Server{
		LeaderboardService: services.NewLeaderboardService(client),
		MatchService:       services.NewMatchService(client),
		PlayerService:      services.NewPlayerService(client),
		RecentService:      services.NewRecentService(recentRepo, queue, cfg.RecentLimit),
		Search:             search.NewCoordinator(searchService.Search, cfg.SearchDebounce, cfg.SearchMinChars),
		I18n:               bundle,
		Templates:          tmpl,
		Static:             web.Static(),
		AssetPrefix:        cfg.AssetPrefix,
		CORSOrigins:        cfg.CORSOrigins,
		Ready:              database.CheckHealth,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.HTTPTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping worker pool")
	pool.Stop()

	log.Info("AG Stats web stopped")
}
