package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"pulsecheck/internal/service"
	"pulsecheck/internal/transport/rest/handler"
	"pulsecheck/internal/transport/rest/middleware"
	"pulsecheck/internal/transport/ws"
)

// Container holds all dependencies for the router.
type Container struct {
	AuthService    *service.AuthService
	SurveyService  *service.SurveyService
	InsightService *service.InsightService
	WSHandler      *ws.Handler
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	insightHandler := handler.NewInsightHandler(c.InsightService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/surveys/{surveyId}", c.WSHandler.DashboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Get).Methods("GET", "OPTIONS")

	adminRoutes.HandleFunc("/surveys/{surveyId}/insights/themes", insightHandler.Themes).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/insights/quality", insightHandler.Quality).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/insights/nlp", insightHandler.NLP).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/insights/culture", insightHandler.Culture).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/insights/actions", insightHandler.Actions).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/insights/summary", insightHandler.Summary).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/insights/snapshot", insightHandler.Snapshot).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/insights/refresh", insightHandler.Refresh).Methods("POST", "OPTIONS")

	adminRoutes.HandleFunc("/sessions/{sessionId}/quality", insightHandler.SessionQuality).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
