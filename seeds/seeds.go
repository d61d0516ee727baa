package seeds

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Setup loads a development dataset so the API is browsable without a
// TMDb credential: the real genre catalog plus a synthetic movie set.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE user_favorites, movie_genres, movies, genres RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting genres")
	if err := seedGenres(ctx, pool); err != nil {
		return fmt.Errorf("seed genres: %w", err)
	}

	log.Println("[seed] inserting movies")
	if err := seedMovies(ctx, pool, rng, 60); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}

	log.Println("[seed] linking genres")
	if err := seedMovieGenres(ctx, pool, rng, 60); err != nil {
		return fmt.Errorf("seed movie genres: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

// The TMDb movie genre catalog with its real provider IDs.
var genreCatalog = []struct {
	TMDBID int
	Name   string
}{
	{28, "Action"}, {12, "Adventure"}, {16, "Animation"}, {35, "Comedy"},
	{80, "Crime"}, {99, "Documentary"}, {18, "Drama"}, {10751, "Family"},
	{14, "Fantasy"}, {36, "History"}, {27, "Horror"}, {10402, "Music"},
	{9648, "Mystery"}, {10749, "Romance"}, {878, "Science Fiction"},
	{10770, "TV Movie"}, {53, "Thriller"}, {10752, "War"}, {37, "Western"},
}

func seedGenres(ctx context.Context, pool *pgxpool.Pool) error {
	rows := []string{}
	args := []any{}

	for _, g := range genreCatalog {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
		args = append(args, g.TMDBID, g.Name)
	}

	query := "INSERT INTO genres (tmdb_id, name) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedMovies(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	titles := []string{
		"Die Hard", "Mad Max: Fury Road", "John Wick", "The Dark Knight",
		"Gladiator", "Top Gun: Maverick", "The Raid", "Mission: Impossible",
		"The Shawshank Redemption", "Forrest Gump", "The Godfather",
		"Schindler's List", "A Beautiful Mind", "12 Angry Men",
		"Parasite", "Moonlight", "Whiplash", "The Green Mile",
		"Superbad", "The Hangover", "Bridesmaids", "Step Brothers",
		"Se7en", "Gone Girl", "Zodiac", "Prisoners",
		"Blade Runner 2049", "Interstellar", "The Matrix", "Arrival",
	}

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		title := titles[i%len(titles)]
		if i >= len(titles) {
			title = fmt.Sprintf("%s %d", title, i/len(titles)+1)
		}

		tmdbID := 100000 + i
		overview := fmt.Sprintf("Synthetic overview for %s.", title)
		releaseDate := time.Now().AddDate(0, 0, -rng.Intn(365*20))
		voteAverage := math.Round(rng.Float64()*100) / 10
		popularity := powerLawScore(rng) * 500

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, tmdbID, title, overview, releaseDate, voteAverage, popularity)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO movies (tmdb_id, title, overview, release_date, vote_average, popularity) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedMovieGenres(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, movieCount int) error {
	seen := make(map[[2]int64]bool)

	rows := []string{}
	args := []any{}

	for movieID := int64(1); movieID <= int64(movieCount); movieID++ {
		// 1-3 genres per movie
		for g, gn := 0, 1+rng.Intn(3); g < gn; g++ {
			genreID := int64(1 + rng.Intn(len(genreCatalog)))

			key := [2]int64{movieID, genreID}
			if seen[key] {
				continue
			}
			seen[key] = true

			base := len(args)
			rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
			args = append(args, movieID, genreID)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO movie_genres (movie_id, genre_id) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func powerLawScore(rng *rand.Rand) float64 {
	u := rng.Float64()
	if u == 0 {
		u = 0.001
	}
	raw := math.Pow(u, 2.0)
	if raw < 0.01 {
		raw = 0.01
	}
	return math.Round(raw*100) / 100
}
