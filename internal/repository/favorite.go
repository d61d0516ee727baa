package repository

import (
	"context"
	"fmt"

	"github.com/filmbase/catalog-service/internal/domain"
)

// ListFavorites returns a user's favorites, newest first.
func (r *Repository) ListFavorites(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT f.id, f.user_id, f.created_at,
		        m.id, m.tmdb_id, m.title, m.overview, m.release_date, m.vote_average, m.popularity, m.poster_path, m.backdrop_path, m.created_at, m.updated_at
		 FROM user_favorites f
		 JOIN movies m ON m.id = f.movie_id
		 WHERE f.user_id = $1
		 ORDER BY f.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query favorites for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		err := rows.Scan(&f.ID, &f.UserID, &f.CreatedAt,
			&f.Movie.ID, &f.Movie.TMDBID, &f.Movie.Title, &f.Movie.Overview, &f.Movie.ReleaseDate,
			&f.Movie.VoteAverage, &f.Movie.Popularity, &f.Movie.PosterPath, &f.Movie.BackdropPath,
			&f.Movie.CreatedAt, &f.Movie.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		items = append(items, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over favorites: %w", err)
	}
	return items, nil
}

// AddFavorite links a user to a locally stored movie. Adding the same
// movie twice is a no-op that returns the existing row.
func (r *Repository) AddFavorite(ctx context.Context, userID, movieID int64) (*domain.Favorite, error) {
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO user_favorites (user_id, movie_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, movie_id) DO NOTHING`,
		userID, movieID,
	); err != nil {
		return nil, fmt.Errorf("insert favorite user=%d movie=%d: %w", userID, movieID, err)
	}

	f := &domain.Favorite{UserID: userID}
	err := r.pool.QueryRow(ctx,
		`SELECT id, created_at FROM user_favorites WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("query favorite user=%d movie=%d: %w", userID, movieID, err)
	}

	return f, nil
}

// RemoveFavorite deletes a user's favorite by the movie's TMDb ID.
func (r *Repository) RemoveFavorite(ctx context.Context, userID int64, tmdbID int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM user_favorites f
		 USING movies m
		 WHERE f.movie_id = m.id AND f.user_id = $1 AND m.tmdb_id = $2`,
		userID, tmdbID,
	)
	if err != nil {
		return fmt.Errorf("delete favorite user=%d tmdb_id=%d: %w", userID, tmdbID, err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}
