package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hydrateWiseAPI/handlers"
	"hydrateWiseAPI/internal/config"
	"hydrateWiseAPI/internal/dates"
	"hydrateWiseAPI/internal/store"
	"hydrateWiseAPI/middleware"
	"hydrateWiseAPI/services"

	_ "net/http/pprof"
)

var (
	cfg                 *config.Config
	kvStore             *store.Store
	hydrationService    *services.HydrationService
	insightsService     *services.InsightsService
	notificationService *services.NotificationService
	reminderService     *services.ReminderService
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	kvStore, err = store.Open(cfg.DatabasePath)
	if err != nil {
		// Storage is optional: the engine runs on in-memory defaults and
		// simply forgets everything on restart.
		log.Printf("Warning: persistent storage unavailable, continuing in memory: %v", err)
		kvStore = store.Unavailable()
	} else {
		log.Printf("Store opened at %s", cfg.DatabasePath)
	}

	clock := dates.SystemClock{}

	notificationService = services.NewNotificationService()
	hydrationService = services.NewHydrationService(kvStore, clock, notificationService, cfg.DefaultGoalMl)
	hydrationService.Initialize()

	generator := services.NewOpenAIGenerator(services.OpenAIConfig{
		CompletionsURL: cfg.OpenAICompletionsURL,
		Model:          cfg.OpenAIModel,
		APIKey:         cfg.OpenAIAPIKey,
	})
	insightsService = services.NewInsightsService(generator)

	reminderService = services.NewReminderService(notificationService, clock, cfg.ReminderInterval, cfg.VisibilityWindow)

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing store...")
		kvStore.Close()
	}()

	// Initialize handlers
	hydrationHandler := handlers.NewHydrationHandler(hydrationService)
	insightsHandler := handlers.NewInsightsHandler(insightsService, hydrationService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	presenceHandler := handlers.NewPresenceHandler(reminderService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(http.DefaultServeMux))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := kvStore.Ping(); err != nil {
			// Degraded, not down: the engine still serves from memory.
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status": "degraded", "storage": "unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "hydrateWise-api"}`))
	}).Methods("GET")

	// -------------------------------------------------------------------------
	// API V1 SUBROUTER
	// -------------------------------------------------------------------------
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/hydration", hydrationHandler.GetHydration).Methods("GET")
	api.HandleFunc("/hydration/log", hydrationHandler.LogWater).Methods("POST")
	api.HandleFunc("/hydration/goal", hydrationHandler.SetGoal).Methods("PUT")
	api.HandleFunc("/hydration/reset", hydrationHandler.ResetIntake).Methods("POST")
	api.HandleFunc("/hydration/score", hydrationHandler.GetScore).Methods("GET")

	api.HandleFunc("/achievements", hydrationHandler.GetAchievements).Methods("GET")

	api.HandleFunc("/insights", insightsHandler.GenerateInsights).Methods("POST")
	api.HandleFunc("/insights/daily-tip", insightsHandler.DailyTip).Methods("POST")

	api.HandleFunc("/notifications", notificationHandler.GetNotifications).Methods("GET")
	api.HandleFunc("/notifications", notificationHandler.ClearNotifications).Methods("DELETE")

	api.HandleFunc("/presence/heartbeat", presenceHandler.Heartbeat).Methods("POST")

	// CORS configuration
	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "X-Pprof-Secret"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorilllaHandlers.AllowCredentials(),
	)

	port := ":" + cfg.Port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	reminderService.Start()

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	reminderService.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
