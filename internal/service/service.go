package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/filmbase/catalog-service/internal/cache"
	"github.com/filmbase/catalog-service/internal/config"
	"github.com/filmbase/catalog-service/internal/domain"
	"github.com/filmbase/catalog-service/internal/tmdb"
)

const (
	genrePageSize = 20

	// Search results go stale fast; unlike the other categories this
	// TTL is fixed rather than configured.
	searchTTL = 30 * time.Minute
)

// Store is the slice of the repository the façade reads and writes.
type Store interface {
	GetMovieByTMDBID(ctx context.Context, tmdbID int) (*domain.Movie, error)
	GetMoviesByGenre(ctx context.Context, genreID int64, limit, offset int) ([]domain.Movie, error)
	CountMoviesByGenre(ctx context.Context, genreID int64) (int, error)
	GetGenreByName(ctx context.Context, name string) (*domain.Genre, error)
	GetGenresForMovie(ctx context.Context, movieID int64) ([]domain.Genre, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	ListFavorites(ctx context.Context, userID int64) ([]domain.Favorite, error)
	AddFavorite(ctx context.Context, userID, movieID int64) (*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userID int64, tmdbID int) error
}

// ResponseCache is the advisory payload cache. Errors are logged and
// treated as misses, never surfaced.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// Provider issues remote catalog reads. A false return means the call
// failed and the façade should degrade to empty results.
type Provider interface {
	Get(ctx context.Context, endpoint string, params url.Values) ([]byte, bool)
}

// Merger folds raw provider records into the local store.
type Merger interface {
	Merge(ctx context.Context, rec tmdb.MovieRecord, detailed bool) (*domain.Movie, error)
	MergeAll(ctx context.Context, recs []tmdb.MovieRecord, detailed bool) []domain.Movie
}

type Service struct {
	store    Store
	cache    ResponseCache
	provider Provider
	merger   Merger
	genres   *GenreCatalog
	ttl      config.CacheTTL
}

func NewService(store Store, respCache ResponseCache, provider Provider, merger Merger, genres *GenreCatalog, ttl config.CacheTTL) *Service {
	return &Service{
		store:    store,
		cache:    respCache,
		provider: provider,
		merger:   merger,
		genres:   genres,
		ttl:      ttl,
	}
}

// Trending returns one provider page of trending movies for a time
// window, merged into the local store.
func (s *Service) Trending(ctx context.Context, window string, page int) (*domain.MoviePage, error) {
	if window != "day" && window != "week" {
		return nil, domain.ErrInvalidTimeWindow
	}

	endpoint := fmt.Sprintf("trending/movie/%s", window)
	return s.fetchMoviePage(ctx, cache.TrendingKey(window, page), endpoint, pageParams(page), s.ttl.Trending, page)
}

// Popular returns one provider page of popular movies.
func (s *Service) Popular(ctx context.Context, page int) (*domain.MoviePage, error) {
	return s.fetchMoviePage(ctx, cache.PopularKey(page), "movie/popular", pageParams(page), s.ttl.Popular, page)
}

// Search looks movies up by title. A blank query short-circuits to an
// empty page without touching the cache or the provider.
func (s *Service) Search(ctx context.Context, query string, page int) (*domain.MoviePage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return emptyPage(page), nil
	}

	params := pageParams(page)
	params.Set("query", query)
	return s.fetchMoviePage(ctx, cache.SearchKey(query, page), "search/movie", params, searchTTL, page)
}

// Details returns a single movie with its genres, serving from the
// local store first and falling back to a live fetch-and-merge.
func (s *Service) Details(ctx context.Context, tmdbID int) (*domain.Movie, error) {
	movie, err := s.store.GetMovieByTMDBID(ctx, tmdbID)
	if err == nil {
		genres, err := s.store.GetGenresForMovie(ctx, movie.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch genres: %w", err)
		}
		movie.Genres = genres
		return movie, nil
	}
	if !errors.Is(err, domain.ErrMovieNotFound) {
		return nil, fmt.Errorf("fetch movie: %w", err)
	}

	payload := s.cachedPayload(ctx, cache.DetailsKey(tmdbID), fmt.Sprintf("movie/%d", tmdbID), nil, s.ttl.Details)
	if payload == nil {
		return nil, domain.ErrMovieNotFound
	}

	var rec tmdb.MovieRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		log.Printf("[service] decode movie details %d: %v", tmdbID, err)
		return nil, domain.ErrMovieNotFound
	}

	movie, err = s.merger.Merge(ctx, rec, true)
	if err != nil {
		log.Printf("[service] merge movie details %d: %v", tmdbID, err)
		return nil, domain.ErrMovieNotFound
	}

	return movie, nil
}

// ByGenre pages through the locally stored movies linked to a genre,
// most popular first. The genre name match is case-insensitive, and an
// unknown name is not-found rather than an empty success.
func (s *Service) ByGenre(ctx context.Context, genreName string, page int) (*domain.MoviePage, error) {
	genre, err := s.store.GetGenreByName(ctx, genreName)
	if err != nil {
		if errors.Is(err, domain.ErrGenreNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch genre: %w", err)
	}

	total, err := s.store.CountMoviesByGenre(ctx, genre.ID)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	offset := (page - 1) * genrePageSize
	movies, err := s.store.GetMoviesByGenre(ctx, genre.ID, genrePageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch movies: %w", err)
	}
	if movies == nil {
		movies = []domain.Movie{}
	}

	return &domain.MoviePage{
		Movies:     movies,
		Page:       page,
		TotalPages: (total + genrePageSize - 1) / genrePageSize,
	}, nil
}

// Genres refreshes the genre catalog (cache-aside, so at most one
// provider call per TTL) and returns the local catalog.
func (s *Service) Genres(ctx context.Context) ([]domain.Genre, error) {
	if err := s.genres.EnsureCatalog(ctx); err != nil {
		log.Printf("[service] refresh genre catalog: %v", err)
	}
	return s.store.ListGenres(ctx)
}

// ListFavorites returns a user's favorites, newest first.
func (s *Service) ListFavorites(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	return s.store.ListFavorites(ctx, userID)
}

// AddFavorite links a locally stored movie to a user. Unknown movies
// are not-found; re-adding is idempotent.
func (s *Service) AddFavorite(ctx context.Context, userID int64, tmdbID int) (*domain.Favorite, error) {
	movie, err := s.store.GetMovieByTMDBID(ctx, tmdbID)
	if err != nil {
		return nil, err
	}

	fav, err := s.store.AddFavorite(ctx, userID, movie.ID)
	if err != nil {
		return nil, err
	}
	fav.Movie = *movie

	return fav, nil
}

// RemoveFavorite unlinks a movie from a user's favorites.
func (s *Service) RemoveFavorite(ctx context.Context, userID int64, tmdbID int) error {
	return s.store.RemoveFavorite(ctx, userID, tmdbID)
}

// fetchMoviePage runs the shared list shape: cache-aside payload
// lookup, merge of each record, pagination passthrough. A transport
// failure degrades to an empty page with zero total pages.
func (s *Service) fetchMoviePage(ctx context.Context, key, endpoint string, params url.Values, ttl time.Duration, page int) (*domain.MoviePage, error) {
	payload := s.cachedPayload(ctx, key, endpoint, params, ttl)
	if payload == nil {
		return emptyPage(page), nil
	}

	var list tmdb.MovieList
	if err := json.Unmarshal(payload, &list); err != nil {
		log.Printf("[service] decode payload for %s: %v", key, err)
		return emptyPage(page), nil
	}

	return &domain.MoviePage{
		Movies:     s.merger.MergeAll(ctx, list.Results, false),
		Page:       page,
		TotalPages: list.TotalPages,
	}, nil
}

// cachedPayload returns the raw payload for a fingerprint, fetching
// from the provider on a miss and storing best-effort. nil means the
// provider call failed and nothing usable was cached.
func (s *Service) cachedPayload(ctx context.Context, key, endpoint string, params url.Values, ttl time.Duration) []byte {
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[service] cache get error for %s: %v", key, err)
	}
	if payload != nil {
		return payload
	}

	payload, ok := s.provider.Get(ctx, endpoint, params)
	if !ok {
		return nil
	}

	if cacheErr := s.cache.Set(ctx, key, payload, ttl); cacheErr != nil {
		log.Printf("[service] cache set error for %s: %v", key, cacheErr)
	}

	return payload
}

func pageParams(page int) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	return params
}

func emptyPage(page int) *domain.MoviePage {
	return &domain.MoviePage{Movies: []domain.Movie{}, Page: page, TotalPages: 0}
}
