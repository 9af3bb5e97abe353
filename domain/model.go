package domain

import "sort"

// WordCounts maps a genre to the number of occurrences of each normalized word.
type WordCounts map[string]map[string]int

// LearnedModel is built once by the learner and is read-only afterwards.
// VocabularySize counts distinct words across every genre.
type LearnedModel struct {
	WordCounts     WordCounts `json:"word_counts"`
	VocabularySize int        `json:"vocabulary_size"`
}

// Genres returns the model genres in lexical order.
func (m LearnedModel) Genres() []string {
	genres := make([]string, 0, len(m.WordCounts))
	for genre := range m.WordCounts {
		genres = append(genres, genre)
	}
	sort.Strings(genres)
	return genres
}

// Count returns the occurrences of word in genre, zero when either is unknown.
func (m LearnedModel) Count(genre, word string) int {
	return m.WordCounts[genre][word]
}

// DistinctWords returns the number of distinct words learned for genre.
func (m LearnedModel) DistinctWords(genre string) int {
	return len(m.WordCounts[genre])
}
