package domain

// MoviePage is the façade return shape: one page of movies plus the
// provider-reported (or locally computed) page count.
type MoviePage struct {
	Movies     []Movie
	Page       int
	TotalPages int
}
