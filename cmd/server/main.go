package main

import (
	"net/http"

	"lastomo-app/internal/chat"
	"lastomo-app/internal/config"
	"lastomo-app/internal/handlers"
	"lastomo-app/internal/llm"
	"lastomo-app/internal/logger"
	"lastomo-app/internal/observability"
	"lastomo-app/internal/store"

	"github.com/joho/godotenv"
)

// enableCORS restricts /api/* to the single configured origin
func enableCORS(origin string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func main() {
	// .env is optional; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("No .env file found, using process environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to load configuration")
	}

	// Schema creation runs here, before any request is served
	profileStore, err := store.New(cfg.Database)
	if err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Failed to initialize store")
	}
	defer profileStore.Close()

	metrics := observability.NewMetrics("lastomo")

	provider := observability.NewInstrumentedProvider(llm.NewOpenAIProvider(&cfg.LLM), metrics)
	chatService := chat.NewService(provider)

	h := handlers.NewHandlers(chatService, profileStore)

	mux := http.NewServeMux()

	corsHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", cfg.Server.AllowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.WriteHeader(http.StatusOK)
	}

	mux.HandleFunc("POST /api/chat", enableCORS(cfg.Server.AllowedOrigin, observability.Middleware(metrics, h.ChatHandler)))
	mux.HandleFunc("OPTIONS /api/chat", corsHandler)
	mux.HandleFunc("POST /api/profile", enableCORS(cfg.Server.AllowedOrigin, observability.Middleware(metrics, h.ProfileHandler)))
	mux.HandleFunc("OPTIONS /api/profile", corsHandler)

	mux.HandleFunc("GET /api/health", enableCORS(cfg.Server.AllowedOrigin, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	mux.HandleFunc("OPTIONS /api/health", corsHandler)

	mux.Handle("GET /metrics", observability.MetricsHandler())

	logger.Log.WithField("port", cfg.Server.Port).Info("Server starting")

	if err := http.ListenAndServe(":"+cfg.Server.Port, mux); err != nil {
		logger.Log.WithField("error", err.Error()).Fatal("Server failed to start")
	}
}
