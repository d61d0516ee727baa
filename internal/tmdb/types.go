package tmdb

// GenreRecord is one entry of the provider genre catalog, also embedded
// in detailed movie payloads.
type GenreRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieRecord is a single movie as the provider serializes it. List
// payloads carry genre_ids; detailed payloads carry full genre objects.
type MovieRecord struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Overview     string        `json:"overview"`
	ReleaseDate  string        `json:"release_date"`
	VoteAverage  float64       `json:"vote_average"`
	Popularity   float64       `json:"popularity"`
	PosterPath   string        `json:"poster_path"`
	BackdropPath string        `json:"backdrop_path"`
	Genres       []GenreRecord `json:"genres,omitempty"`
	GenreIDs     []int         `json:"genre_ids,omitempty"`
}

// MovieList is the paged envelope returned by trending, popular and
// search endpoints.
type MovieList struct {
	Page       int           `json:"page"`
	Results    []MovieRecord `json:"results"`
	TotalPages int           `json:"total_pages"`
}

// GenreList is the envelope returned by the genre catalog endpoint.
type GenreList struct {
	Genres []GenreRecord `json:"genres"`
}
