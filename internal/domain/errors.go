package domain

import "errors"

var (
	ErrMovieNotFound     = errors.New("movie not found")
	ErrGenreNotFound     = errors.New("genre not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrInvalidTimeWindow = errors.New("time window must be \"day\" or \"week\"")
)
