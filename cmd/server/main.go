package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MargotLh/market-research-assistant/internal/application"
	"github.com/MargotLh/market-research-assistant/internal/transport/server"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("Market Research Assistant Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  PORT                  Server port (default: 8080)\n")
		fmt.Printf("  HOST                  Server host (default: 0.0.0.0)\n")
		fmt.Printf("  GEMINI_MODEL          Gemini model for reports (default: gemini-2.0-flash)\n")
		fmt.Printf("  GEMINI_API_KEY        Gemini API key, only used for scheduled refreshes\n")
		fmt.Printf("  WIKIPEDIA_LANG        Wikipedia language edition (default: en)\n")
		fmt.Printf("  CHECK_INDUSTRY        Vet the industry name with the model first (default: false)\n")
		fmt.Printf("  CACHE_DURATION_HOURS  Result cache lifetime in hours (default: 24)\n")
		fmt.Printf("  ADMIN_AUTH_TOKEN      Bearer token for cache administration\n")
		fmt.Printf("  WATCH_INDUSTRIES      Comma-separated industries to refresh on a schedule\n")
		fmt.Printf("  WATCH_SCHEDULE        Cron expression for refreshes (default: 0 7 * * *)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("Market Research Assistant Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	application.Version = Version

	// Create application
	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	// Setup routes
	router := server.NewRouter(app)

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", app.Config.Host, app.Config.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Schedule watched industry refreshes
	c := cron.New()
	if len(app.Config.WatchIndustries) > 0 {
		_, err := c.AddFunc(app.Config.WatchSchedule, func() {
			refreshWatched(ctx, app)
		})
		if err != nil {
			log.Fatalf("Failed to schedule industry refreshes: %v", err)
		}
		log.Printf("📅 Scheduled %d industries with cron: %s", len(app.Config.WatchIndustries), app.Config.WatchSchedule)

		// Warm the cache once at startup
		go refreshWatched(ctx, app)
	}

	// Start cron scheduler
	c.Start()
	defer c.Stop()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.Printf("🚀 Starting server on %s:%s", app.Config.Host, app.Config.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("🛑 Shutting down server...")

	// Cancel background tasks
	cancel()

	// Stop cron scheduler
	c.Stop()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Server stopped")
}

// refreshWatched regenerates reports for the configured industries, skipping
// ones that still have a live cache entry.
func refreshWatched(ctx context.Context, app *application.Application) {
	for _, industry := range app.Config.WatchIndustries {
		select {
		case <-ctx.Done():
			return
		default:
		}

		cached, err := app.ResearchService.IsCached(ctx, industry)
		if err == nil && cached {
			log.Printf("Skipping cached industry: %s", industry)
			continue
		}

		log.Printf("🕐 Scheduled research starting for %s", industry)
		if _, err := app.ResearchService.Process(ctx, industry, app.Config.GeminiAPIKey); err != nil {
			log.Printf("❌ Scheduled research failed for %s: %v", industry, err)
		} else {
			log.Printf("✅ Scheduled research completed for %s", industry)
		}
	}
}
