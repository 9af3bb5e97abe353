// Package fingerprint turns a text into per-genre scores with a Laplace smoothed bag of words.
package fingerprint

import (
	"movie-rec/domain"
	"movie-rec/learning"
	"strings"
)

type Options struct {
	// NormalizeQueryTokens applies the learner normalization to query tokens.
	// Disabled by default: raw tokens carrying punctuation or capitals never match.
	NormalizeQueryTokens bool
}

type Generator struct {
	opts Options
}

func NewGenerator(opts Options) Generator {
	return Generator{opts: opts}
}

// Fingerprint scores text against every genre of the model.
// Words unknown to a genre leave its score untouched, so a text without any
// known word scores 1.0 everywhere.
func (g Generator) Fingerprint(text string, model domain.LearnedModel) domain.Fingerprint {
	tokens := strings.Fields(text)
	if g.opts.NormalizeQueryTokens {
		for i, token := range tokens {
			tokens[i] = learning.NormalizeWord(token)
		}
	}

	fp := make(domain.Fingerprint, len(model.WordCounts))
	for genre, words := range model.WordCounts {
		denominator := float64(len(words) + model.VocabularySize)
		probability := 1.0
		for _, token := range tokens {
			count := words[token]
			if count == 0 {
				continue
			}
			probability *= float64(count+1) / denominator
		}
		fp[genre] = probability
	}
	return fp
}
