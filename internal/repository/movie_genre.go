package repository

import (
	"context"
	"fmt"
	"strings"
)

// ReplaceMovieGenres discards all genre links for a movie and inserts
// the latest set in one transaction, so the association set always
// mirrors the most recent provider data.
func (r *Repository) ReplaceMovieGenres(ctx context.Context, movieID int64, genreIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace genres for movie %d: %w", movieID, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movieID); err != nil {
		return fmt.Errorf("clear genres for movie %d: %w", movieID, err)
	}

	if len(genreIDs) > 0 {
		rows := []string{}
		args := []any{}
		for _, genreID := range genreIDs {
			base := len(args)
			rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
			args = append(args, movieID, genreID)
		}

		query := "INSERT INTO movie_genres (movie_id, genre_id) VALUES " + strings.Join(rows, ", ") +
			" ON CONFLICT (movie_id, genre_id) DO NOTHING"

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert genres for movie %d: %w", movieID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace genres for movie %d: %w", movieID, err)
	}
	return nil
}
