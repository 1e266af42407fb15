package routes

import (
	"encoding/json"
	"net/http"

	"cosmicdevspace/app/controllers"
	"cosmicdevspace/app/middleware"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// SetupRoutes defines the application's routes and returns a handler,
// using the provided Badger DB.
func SetupRoutes(db *badger.DB, log zerolog.Logger) http.Handler {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.ContentTypeJSON)

	portfolioController := controllers.NewPortfolioControllerWithDB(db)
	commentController := controllers.NewCommentControllerWithDB(db)
	guestbookController := controllers.NewGuestbookControllerWithDB(db)

	// Serve static files
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// API routes
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", healthCheck).Methods("GET")

	// Portfolio API endpoints
	portfolio := api.PathPrefix("/portfolio").Subrouter()
	portfolio.HandleFunc("", portfolioController.Index).Methods("GET")
	portfolio.HandleFunc("", portfolioController.Create).Methods("POST")
	portfolio.HandleFunc("/{itemId}", portfolioController.Show).Methods("GET")
	portfolio.HandleFunc("/{itemId}", portfolioController.Edit).Methods("PUT")
	portfolio.HandleFunc("/{itemId}", portfolioController.Delete).Methods("DELETE")

	// Comment API endpoints
	portfolio.HandleFunc("/{itemId}/comments", commentController.Index).Methods("GET")
	portfolio.HandleFunc("/{itemId}/comments", commentController.Create).Methods("POST")
	portfolio.HandleFunc("/{itemId}/comments/{commentId}/reply", commentController.Reply).Methods("POST")
	portfolio.HandleFunc("/{itemId}/comments/{commentId}/like", commentController.Like).Methods("POST")

	// Guestbook API endpoints
	api.HandleFunc("/guestbook", guestbookController.Index).Methods("GET")
	api.HandleFunc("/guestbook", guestbookController.Create).Methods("POST")

	corsHandler := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"*"},
	})

	return corsHandler.Handler(router)
}

// healthCheck reports service liveness
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    map[string]string{"status": "ok"},
	})
}
