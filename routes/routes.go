package routes

import (
	"net/http"

	"postboard/app/controllers"
	"postboard/app/middleware"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(db *badger.DB, jwtSecret string) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	postController := controllers.NewPostControllerWithDB(db)
	requireAuth := middleware.RequireAuth(jwtSecret)

	api := router.PathPrefix("/api").Subrouter()
	posts := api.PathPrefix("/posts").Subrouter()

	// Public endpoints
	posts.HandleFunc("/test", postController.Test).Methods("GET")
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")

	// Lifecycle and engagement endpoints require a bearer token
	posts.Handle("", requireAuth(http.HandlerFunc(postController.Create))).Methods("POST")
	posts.Handle("/{id:[0-9]+}", requireAuth(http.HandlerFunc(postController.Delete))).Methods("DELETE")
	posts.Handle("/like/{id:[0-9]+}", requireAuth(http.HandlerFunc(postController.Like))).Methods("POST")
	posts.Handle("/unlike/{id:[0-9]+}", requireAuth(http.HandlerFunc(postController.Unlike))).Methods("POST")
	posts.Handle("/comment/{id:[0-9]+}", requireAuth(http.HandlerFunc(postController.Comment))).Methods("POST")
	posts.Handle("/comment/{id:[0-9]+}/{comment_id}", requireAuth(http.HandlerFunc(postController.DeleteComment))).Methods("DELETE")

	return router
}
