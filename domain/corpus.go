// Package domain contains the core concepts of the recommender.
// This file defines the rows consumed from the corpus and catalog sources.
package domain

// CorpusEntry is one labeled description: a catalog row joined with its genre.
type CorpusEntry struct {
	ID          string
	Genre       string
	Description string
}

// CatalogEntry is one recommendable item.
type CatalogEntry struct {
	ID          string
	Title       string
	Description string
}
