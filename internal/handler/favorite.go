package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/filmbase/catalog-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

func parseUserID(r *http.Request) (int64, bool) {
	userIDStr := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// GET /users/{userID}/favorites
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	favorites, err := h.service.ListFavorites(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}

	writeJSON(w, http.StatusOK, FavoriteListResponse{Results: favorites, Count: len(favorites)})
}

// POST /users/{userID}/favorites
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	var req AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TMDBID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Request body must carry a positive tmdb_id")
		return
	}

	fav, err := h.service.AddFavorite(r.Context(), userID, req.TMDBID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			writeError(w, http.StatusNotFound, "movie_not_found",
				fmt.Sprintf("Movie with TMDb ID %d does not exist", req.TMDBID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusCreated, fav)
}

// DELETE /users/{userID}/favorites/{tmdbID}
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	tmdbID, err := strconv.Atoi(chi.URLParam(r, "tmdbID"))
	if err != nil || tmdbID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid movie id")
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), userID, tmdbID); err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			writeError(w, http.StatusNotFound, "favorite_not_found",
				fmt.Sprintf("Movie with TMDb ID %d is not in favorites", tmdbID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
