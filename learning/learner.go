// Package learning counts the words of a labeled corpus per genre.
package learning

import (
	"fmt"
	"log/slog"
	"movie-rec/domain"
	"movie-rec/errors"
	"strings"
	"unicode/utf8"
)

// punctuation is the ASCII punctuation set stripped from every learned word.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

type Learner struct {
	log *slog.Logger
}

func NewLearner(log *slog.Logger) *Learner {
	return &Learner{log: log}
}

// Learn builds the genre -> word -> count table of the corpus.
// The vocabulary size is the number of distinct normalized words over all genres.
func (l *Learner) Learn(entries []domain.CorpusEntry) (domain.LearnedModel, error) {
	l.log.Info("Starting learning", "entries", len(entries))
	counts := make(domain.WordCounts)
	vocabulary := make(map[string]struct{})

	for i, entry := range entries {
		if err := checkEntry(entry); err != nil {
			return domain.LearnedModel{}, fmt.Errorf("entry %d: %w", i, err)
		}
		genre := strings.ToLower(entry.Genre)
		l.log.Debug("Learning new words", "genre", genre, "id", entry.ID)

		words, ok := counts[genre]
		if !ok {
			words = make(map[string]int)
			counts[genre] = words
		}
		for _, token := range strings.Fields(strings.ToLower(entry.Description)) {
			word := NormalizeWord(token)
			vocabulary[word] = struct{}{}
			words[word]++
		}
	}

	l.log.Info("Done learning", "genres", len(counts), "vocabulary", len(vocabulary))
	return domain.LearnedModel{WordCounts: counts, VocabularySize: len(vocabulary)}, nil
}

// NormalizeWord lower-cases a token and removes ASCII punctuation.
// A token made only of punctuation becomes the empty word, which is kept.
func NormalizeWord(token string) string {
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, strings.ToLower(token))
}

func checkEntry(entry domain.CorpusEntry) error {
	switch {
	case entry.ID == "":
		return fmt.Errorf("%w: empty id", errors.ErrMalformedInput)
	case entry.Genre == "":
		return fmt.Errorf("%w: empty genre for id %s", errors.ErrMalformedInput, entry.ID)
	case !utf8.ValidString(entry.Description):
		return fmt.Errorf("%w: description of id %s is not valid UTF-8", errors.ErrMalformedInput, entry.ID)
	}
	return nil
}
