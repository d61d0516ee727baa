package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/filmbase/catalog-service/internal/domain"
	"github.com/jackc/pgx/v5"
)

// UpsertGenres bulk-upserts the provider genre catalog. Name corrections
// from the provider overwrite the stored name.
func (r *Repository) UpsertGenres(ctx context.Context, genres []domain.Genre) error {
	if len(genres) == 0 {
		return nil
	}

	rows := []string{}
	args := []any{}
	for _, g := range genres {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
		args = append(args, g.TMDBID, g.Name)
	}

	query := "INSERT INTO genres (tmdb_id, name) VALUES " + strings.Join(rows, ", ") +
		" ON CONFLICT (tmdb_id) DO UPDATE SET name = EXCLUDED.name"

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert genres: %w", err)
	}
	return nil
}

// GetGenreByName matches a genre by display name, case-insensitively.
func (r *Repository) GetGenreByName(ctx context.Context, name string) (*domain.Genre, error) {
	g := &domain.Genre{}

	err := r.pool.QueryRow(ctx,
		`SELECT id, tmdb_id, name, created_at FROM genres WHERE LOWER(name) = LOWER($1)`,
		name,
	).Scan(&g.ID, &g.TMDBID, &g.Name, &g.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, fmt.Errorf("query genre name=%q: %w", name, err)
	}

	return g, nil
}

// ListGenres returns all local genres ordered by name.
func (r *Repository) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tmdb_id, name, created_at FROM genres ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("query genres: %w", err)
	}
	defer rows.Close()

	var items []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.TMDBID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		items = append(items, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over genres: %w", err)
	}
	return items, nil
}

// CountGenres counts the local genre catalog.
func (r *Repository) CountGenres(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count genres: %w", err)
	}
	return total, nil
}

// GenreIDsByTMDBIDs maps provider genre IDs to local surrogate IDs.
// Provider IDs with no local genre are simply absent from the result.
func (r *Repository) GenreIDsByTMDBIDs(ctx context.Context, tmdbIDs []int) (map[int]int64, error) {
	if len(tmdbIDs) == 0 {
		return map[int]int64{}, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT tmdb_id, id FROM genres WHERE tmdb_id = ANY($1)`,
		tmdbIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query genre ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[int]int64, len(tmdbIDs))
	for rows.Next() {
		var tmdbID int
		var id int64
		if err := rows.Scan(&tmdbID, &id); err != nil {
			return nil, fmt.Errorf("scan genre id: %w", err)
		}
		ids[tmdbID] = id
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre ids: %w", err)
	}
	return ids, nil
}

// GetGenresForMovie returns the genres currently linked to a movie.
func (r *Repository) GetGenresForMovie(ctx context.Context, movieID int64) ([]domain.Genre, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT g.id, g.tmdb_id, g.name, g.created_at
		 FROM genres g
		 JOIN movie_genres mg ON mg.genre_id = g.id
		 WHERE mg.movie_id = $1
		 ORDER BY g.name`,
		movieID,
	)
	if err != nil {
		return nil, fmt.Errorf("query genres for movie %d: %w", movieID, err)
	}
	defer rows.Close()

	var items []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.TMDBID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		items = append(items, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over genres: %w", err)
	}
	return items, nil
}
