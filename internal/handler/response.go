package handler

import "github.com/filmbase/catalog-service/internal/domain"

// MoviePageResponse is the paginated list envelope. Query and Genre are
// echo fields set only by the operations that take them.
type MoviePageResponse struct {
	Results    []domain.Movie `json:"results"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Count      int            `json:"count"`
	Query      string         `json:"query,omitempty"`
	Genre      string         `json:"genre,omitempty"`
}

type GenreListResponse struct {
	Genres []domain.Genre `json:"genres"`
	Count  int            `json:"count"`
}

type FavoriteListResponse struct {
	Results []domain.Favorite `json:"results"`
	Count   int               `json:"count"`
}

type AddFavoriteRequest struct {
	TMDBID int `json:"tmdb_id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func moviePageResponse(page *domain.MoviePage) MoviePageResponse {
	return MoviePageResponse{
		Results:    page.Movies,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Count:      len(page.Movies),
	}
}
