package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/marcus-crane/backstage-plugin-slackbot-backend/clients/backstage"
	slackclient "github.com/marcus-crane/backstage-plugin-slackbot-backend/clients/slack"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/config"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/handlers"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/middleware"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/services/catalog"
	"github.com/marcus-crane/backstage-plugin-slackbot-backend/usecases/slackbot"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.SlackConfig.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "backstage-slackbot",
		LogsURL:     cfg.ServerLogsURL,
	})

	// Initialize clients
	backstageClient := backstage.NewBackstageClient(cfg.BackstageConfig.BaseURL, cfg.BackstageConfig.APIToken)
	slackClient := slackclient.NewSlackClient(cfg.SlackConfig.BotToken)

	// Initialize services and the mention processing pipeline
	catalogService := catalog.NewCatalogService(backstageClient)
	slackbotUseCase := slackbot.NewSlackbotUseCase(slackClient, catalogService, cfg.BackstageConfig.BaseURL)
	slackHandler := handlers.NewSlackEventsHandler(cfg.SlackConfig.SigningSecret, slackbotUseCase, alertMiddleware)

	// Create a new router
	router := mux.NewRouter()

	// Setup endpoints with the new router
	slackHandler.SetupEndpoints(router)

	// Health check endpoint. Reports degraded when the Slack transport has no
	// credentials, which only happens outside strict config mode.
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		status, body := http.StatusOK, `{"status":"ok"}`
		if !cfg.SlackConfig.IsConfigured() {
			status, body = http.StatusServiceUnavailable, `{"status":"degraded","reason":"slack transport not configured"}`
		}
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
