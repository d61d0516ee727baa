package cache

import (
	"fmt"
	"strings"
)

// Request fingerprints. Keys are deterministic functions of the logical
// operation and its normalized parameters so identical requests share a
// cache entry.

func GenresKey() string {
	return "tmdb:genres"
}

func TrendingKey(window string, page int) string {
	return fmt.Sprintf("trending_movies_%s_%d", window, page)
}

func PopularKey(page int) string {
	return fmt.Sprintf("popular_movies_%d", page)
}

func DetailsKey(tmdbID int) string {
	return fmt.Sprintf("movie_details_%d", tmdbID)
}

func SearchKey(query string, page int) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	return fmt.Sprintf("search_movies_%s_%d", normalized, page)
}
