package merge

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/filmbase/catalog-service/internal/domain"
	"github.com/filmbase/catalog-service/internal/tmdb"
)

const releaseDateLayout = "2006-01-02"

// Store is the slice of the local store the engine writes through.
type Store interface {
	UpsertMovie(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
	ReplaceMovieGenres(ctx context.Context, movieID int64, genreIDs []int64) error
}

// GenreResolver maps provider genre IDs to local genre IDs, fetching
// the genre catalog first if it is not materialized yet. Provider IDs
// with no local match are absent from the returned map.
type GenreResolver interface {
	Resolve(ctx context.Context, tmdbIDs []int) (map[int]int64, error)
}

// Engine converts raw provider movie records into the local entity
// graph via idempotent upsert.
type Engine struct {
	store  Store
	genres GenreResolver
}

func NewEngine(store Store, genres GenreResolver) *Engine {
	return &Engine{store: store, genres: genres}
}

// Merge upserts one provider record. Detailed payloads carry full genre
// objects, list payloads a bare ID list; either way the movie's genre
// links are fully replaced with the latest set.
func (e *Engine) Merge(ctx context.Context, rec tmdb.MovieRecord, detailed bool) (*domain.Movie, error) {
	if rec.ID == 0 {
		return nil, errors.New("record has no provider id")
	}

	movie := &domain.Movie{
		TMDBID:       rec.ID,
		Title:        rec.Title,
		Overview:     rec.Overview,
		ReleaseDate:  parseReleaseDate(rec.ReleaseDate),
		VoteAverage:  rec.VoteAverage,
		Popularity:   rec.Popularity,
		PosterPath:   rec.PosterPath,
		BackdropPath: rec.BackdropPath,
	}

	movie, err := e.store.UpsertMovie(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("upsert: %w", err)
	}

	genreIDs := extractGenreIDs(rec)
	if len(genreIDs) > 0 {
		resolved, err := e.genres.Resolve(ctx, genreIDs)
		if err != nil {
			return nil, fmt.Errorf("resolve genres: %w", err)
		}

		localIDs := make([]int64, 0, len(genreIDs))
		for _, id := range genreIDs {
			localID, ok := resolved[id]
			if !ok {
				// No local genre for this provider ID; skip the link.
				continue
			}
			localIDs = append(localIDs, localID)
		}

		if err := e.store.ReplaceMovieGenres(ctx, movie.ID, localIDs); err != nil {
			return nil, fmt.Errorf("replace genres: %w", err)
		}

		if detailed {
			for _, g := range rec.Genres {
				localID, ok := resolved[g.ID]
				if !ok {
					continue
				}
				movie.Genres = append(movie.Genres, domain.Genre{ID: localID, TMDBID: g.ID, Name: g.Name})
			}
		}
	}

	return movie, nil
}

// MergeAll merges a batch of records, skipping the ones that fail so a
// single malformed record never poisons the rest of the page.
func (e *Engine) MergeAll(ctx context.Context, recs []tmdb.MovieRecord, detailed bool) []domain.Movie {
	movies := make([]domain.Movie, 0, len(recs))
	for _, rec := range recs {
		movie, err := e.Merge(ctx, rec, detailed)
		if err != nil {
			log.Printf("[merge] skipping record tmdb_id=%d: %v", rec.ID, err)
			continue
		}
		movies = append(movies, *movie)
	}
	return movies
}

// A missing or unparsable release date is no date, never a merge
// failure.
func parseReleaseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(releaseDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// extractGenreIDs honors whichever genre field the payload carries:
// full genre objects on detailed payloads, a bare ID list otherwise.
func extractGenreIDs(rec tmdb.MovieRecord) []int {
	if len(rec.Genres) > 0 {
		ids := make([]int, 0, len(rec.Genres))
		for _, g := range rec.Genres {
			ids = append(ids, g.ID)
		}
		return ids
	}
	return rec.GenreIDs
}
