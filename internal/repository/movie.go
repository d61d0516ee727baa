package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/filmbase/catalog-service/internal/domain"
	"github.com/jackc/pgx/v5"
)

// UpsertMovie creates the movie on first sighting of its TMDb ID and
// fully replaces the mutable fields on every later one. The TMDb ID
// itself is never updated.
func (r *Repository) UpsertMovie(ctx context.Context, m *domain.Movie) (*domain.Movie, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO movies (tmdb_id, title, overview, release_date, vote_average, popularity, poster_path, backdrop_path)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (tmdb_id) DO UPDATE SET
		 	title = EXCLUDED.title,
		 	overview = EXCLUDED.overview,
		 	release_date = EXCLUDED.release_date,
		 	vote_average = EXCLUDED.vote_average,
		 	popularity = EXCLUDED.popularity,
		 	poster_path = EXCLUDED.poster_path,
		 	backdrop_path = EXCLUDED.backdrop_path,
		 	updated_at = now()
		 RETURNING id, created_at, updated_at`,
		m.TMDBID, m.Title, m.Overview, m.ReleaseDate, m.VoteAverage, m.Popularity, m.PosterPath, m.BackdropPath,
	)

	out := *m
	if err := row.Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, fmt.Errorf("upsert movie tmdb_id=%d: %w", m.TMDBID, err)
	}

	return &out, nil
}

// GetMovieByTMDBID returns the locally stored movie for a provider ID.
func (r *Repository) GetMovieByTMDBID(ctx context.Context, tmdbID int) (*domain.Movie, error) {
	m := &domain.Movie{}

	err := r.pool.QueryRow(ctx,
		`SELECT id, tmdb_id, title, overview, release_date, vote_average, popularity, poster_path, backdrop_path, created_at, updated_at
		 FROM movies WHERE tmdb_id = $1`,
		tmdbID,
	).Scan(&m.ID, &m.TMDBID, &m.Title, &m.Overview, &m.ReleaseDate, &m.VoteAverage,
		&m.Popularity, &m.PosterPath, &m.BackdropPath, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("query movie tmdb_id=%d: %w", tmdbID, err)
	}

	return m, nil
}

// GetMoviesByGenre returns one page of the movies linked to a genre,
// most popular first.
func (r *Repository) GetMoviesByGenre(ctx context.Context, genreID int64, limit, offset int) ([]domain.Movie, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT m.id, m.tmdb_id, m.title, m.overview, m.release_date, m.vote_average, m.popularity, m.poster_path, m.backdrop_path, m.created_at, m.updated_at
		 FROM movies m
		 JOIN movie_genres mg ON mg.movie_id = m.id
		 WHERE mg.genre_id = $1
		 ORDER BY m.popularity DESC
		 LIMIT $2 OFFSET $3`,
		genreID, limit, offset,
	)

	if err != nil {
		return nil, fmt.Errorf("query movies for genre %d: %w", genreID, err)
	}
	defer rows.Close()

	var items []domain.Movie
	for rows.Next() {
		var m domain.Movie
		err := rows.Scan(&m.ID, &m.TMDBID, &m.Title, &m.Overview, &m.ReleaseDate, &m.VoteAverage,
			&m.Popularity, &m.PosterPath, &m.BackdropPath, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over movies: %w", err)
	}
	return items, nil
}

// CountMoviesByGenre counts the movies linked to a genre.
func (r *Repository) CountMoviesByGenre(ctx context.Context, genreID int64) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM movie_genres WHERE genre_id = $1`,
		genreID,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("count movies for genre %d: %w", genreID, err)
	}
	return total, nil
}
