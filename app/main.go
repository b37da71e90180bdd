package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voxummah/newsdesk/app/api"
	"github.com/voxummah/newsdesk/app/catalog"
	"github.com/voxummah/newsdesk/app/cfg"
	"github.com/voxummah/newsdesk/app/cms"
	"github.com/voxummah/newsdesk/app/content"
	"github.com/voxummah/newsdesk/app/database"
	"github.com/voxummah/newsdesk/app/ghost"
	"github.com/voxummah/newsdesk/app/syndication"
	"github.com/voxummah/newsdesk/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Newsdesk server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	fallback, err := catalog.NewLoader(appCfg.CatalogDir).Run()
	if err != nil {
		slog.Error("Failed to load fallback catalog", "dir", appCfg.CatalogDir, "error", err)
		os.Exit(1)
	}
	httpClient := &http.Client{Timeout: 30 * time.Second}

	ghostClient := ghost.NewClient(httpClient, appCfg.GhostURL, appCfg.GhostKey, appCfg.UserAgent)
	if ghostClient.Enabled() {
		slog.Info("Remote content source configured", "url", appCfg.GhostURL)
	} else {
		slog.Info("Remote content source not configured, serving fallback catalog only")
	}

	aggregator := content.NewAggregator(ghost.NewSource(ghostClient), fallback)
	go aggregator.Run(context.Background())

	articleRepo := database.NewArticleRepository(db)
	tagRepo := database.NewTagRepository(db)
	cmsService := cms.NewService(articleRepo, tagRepo)

	sources, err := syndication.LoadSources(appCfg.SourcesFile)
	if err != nil {
		slog.Error("Failed to load syndication sources", "file", appCfg.SourcesFile, "error", err)
		os.Exit(1)
	}
	if len(sources) > 0 {
		slog.Info("Syndication sources loaded", "file", appCfg.SourcesFile, "count", len(sources))
	}

	scheduler := tasks.NewScheduler(articleRepo, httpClient, syndication.NewParser(),
		syndication.NewExtractor(), sources)
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Background scheduler started", "workers", appCfg.WorkerCount, "interval", appCfg.SchedulerInterval)

	apiHandler := api.NewHandler(aggregator, ghostClient, articleRepo, tagRepo, cmsService,
		scheduler, sources, httpClient, appCfg.UserAgent)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
