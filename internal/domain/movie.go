package domain

import "time"

type Movie struct {
	ID           int64      `json:"id"`
	TMDBID       int        `json:"tmdb_id"`
	Title        string     `json:"title"`
	Overview     string     `json:"overview"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`
	VoteAverage  float64    `json:"vote_average"`
	Popularity   float64    `json:"popularity"`
	PosterPath   string     `json:"poster_path"`
	BackdropPath string     `json:"backdrop_path"`
	Genres       []Genre    `json:"genres,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
