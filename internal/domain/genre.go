package domain

import "time"

type Genre struct {
	ID        int64     `json:"id"`
	TMDBID    int       `json:"tmdb_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
