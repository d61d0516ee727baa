package router

import (
	"net/http"
	"time"

	"github.com/filmbase/catalog-service/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Get("/api/genres", h.ListGenres)
	r.Get("/api/movies/trending", h.GetTrending)
	r.Get("/api/movies/popular", h.GetPopular)
	r.Get("/api/movies/search", h.SearchMovies)
	r.Get("/api/movies/genre", h.GetMoviesByGenre)
	r.Get("/api/movies/{tmdbID}", h.GetMovieDetails)

	r.Get("/users/{userID}/favorites", h.ListFavorites)
	r.Post("/users/{userID}/favorites", h.AddFavorite)
	r.Delete("/users/{userID}/favorites/{tmdbID}", h.RemoveFavorite)

	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
