package domain

// TitleNotFound is returned by title lookups for an unknown id.
const TitleNotFound = "Movie not found"

// Recommendation is the catalog id closest to a query. OK is false when the
// catalog index was empty.
type Recommendation struct {
	ID    string
	Score float64
	OK    bool
}
