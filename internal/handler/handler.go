package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/filmbase/catalog-service/internal/service"
)

type Handler struct {
	service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// parsePage reads the page query parameter, defaulting to 1. The bool
// is false when the parameter is present but invalid.
func parsePage(r *http.Request) (int, bool) {
	pageStr := r.URL.Query().Get("page")
	if pageStr == "" {
		return 1, true
	}
	parsed, err := strconv.Atoi(pageStr)
	if err != nil || parsed < 1 || parsed > 10000 {
		return 0, false
	}
	return parsed, true
}
