package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/filmbase/catalog-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

// GET /api/movies/trending
func (h *Handler) GetTrending(w http.ResponseWriter, r *http.Request) {
	window := r.URL.Query().Get("time_window")
	if window == "" {
		window = "day"
	}

	page, ok := parsePage(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid page parameter")
		return
	}

	result, err := h.service.Trending(r.Context(), window, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTimeWindow) {
			writeError(w, http.StatusBadRequest, "invalid_parameter", `time_window must be "day" or "week"`)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, moviePageResponse(result))
}

// GET /api/movies/popular
func (h *Handler) GetPopular(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid page parameter")
		return
	}

	result, err := h.service.Popular(r.Context(), page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, moviePageResponse(result))
}

// GET /api/movies/search
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Search query is required")
		return
	}

	page, ok := parsePage(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid page parameter")
		return
	}

	result, err := h.service.Search(r.Context(), query, page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := moviePageResponse(result)
	resp.Query = query
	writeJSON(w, http.StatusOK, resp)
}

// GET /api/movies/genre
func (h *Handler) GetMoviesByGenre(w http.ResponseWriter, r *http.Request) {
	genre := strings.TrimSpace(r.URL.Query().Get("genre"))
	if genre == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Genre parameter is required")
		return
	}

	page, ok := parsePage(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid page parameter")
		return
	}

	result, err := h.service.ByGenre(r.Context(), genre, page)
	if err != nil {
		if errors.Is(err, domain.ErrGenreNotFound) {
			writeError(w, http.StatusNotFound, "genre_not_found",
				fmt.Sprintf("Genre %q not found", genre))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := moviePageResponse(result)
	resp.Genre = genre
	writeJSON(w, http.StatusOK, resp)
}

// GET /api/movies/{tmdbID}
func (h *Handler) GetMovieDetails(w http.ResponseWriter, r *http.Request) {
	tmdbIDStr := chi.URLParam(r, "tmdbID")
	tmdbID, err := strconv.Atoi(tmdbIDStr)
	if err != nil || tmdbID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid movie id")
		return
	}

	movie, err := h.service.Details(r.Context(), tmdbID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			writeError(w, http.StatusNotFound, "movie_not_found",
				fmt.Sprintf("Movie with TMDb ID %d does not exist", tmdbID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

// GET /api/genres
func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.Genres(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if genres == nil {
		genres = []domain.Genre{}
	}

	writeJSON(w, http.StatusOK, GenreListResponse{Genres: genres, Count: len(genres)})
}
