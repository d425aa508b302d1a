package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fdatools/openfda-mcp/config"
	"github.com/fdatools/openfda-mcp/logging"
	"github.com/fdatools/openfda-mcp/mcp"
	"github.com/fdatools/openfda-mcp/metrics"
	"github.com/fdatools/openfda-mcp/openfda"
)

var serverStartTime = time.Now()

func main() {
	// .env is optional; in containers everything comes from the real
	// environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Env, cfg.LogLevel)

	client := openfda.NewClient()
	mcpHandler := mcp.NewHandler(client)

	router := chi.NewRouter()

	router.Use(middleware.RedirectSlashes)
	router.Use(middleware.RequestID)
	router.Use(realIPMiddleware)
	router.Use(slogMiddleware)
	router.Use(middleware.Recoverer)
	router.Use(requestSizeMiddleware(cfg))
	router.Use(metrics.Metrics)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Mcp-Session-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Use(rateLimitHandler)

	// Routes
	router.Post("/mcp", mcpHandler.ServeHTTP)
	router.Get("/health", healthCheck)
	router.Get("/metrics", promhttp.Handler().ServeHTTP)

	server := &http.Server{
		Handler:      router,
		Addr:         cfg.Address + ":" + cfg.Port,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // tool calls wait on upstream retries
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting FDA drug tools MCP server at %s:%s\n", cfg.Address, cfg.Port)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	logging.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		if err := server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
		}
	} else {
		logging.Info("Server exited gracefully")
	}
}

// Health check endpoint. The service holds no data, so healthy means the
// process is up; the upstream endpoint is reported for operators.
func healthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":         "healthy",
		"upstream":       "https://api.fda.gov/drug/label.json",
		"uptime_seconds": time.Since(serverStartTime).Seconds(),
	}

	respondWithJSON(w, http.StatusOK, status)
}
