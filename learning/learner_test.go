package learning

import (
	goerrors "errors"
	"log/slog"
	"movie-rec/domain"
	"movie-rec/errors"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestLearner_Learn_Counts_Per_Genre(t *testing.T) {
	req := require.New(t)
	learner := NewLearner(logs.GetLoggerFromLevel(slog.LevelDebug))

	model, err := learner.Learn([]domain.CorpusEntry{
		{ID: "1", Genre: "Comedy", Description: "funny happy joke"},
		{ID: "2", Genre: "Drama", Description: "sad loss grief"},
	})
	req.NoError(err)
	req.Equal(domain.WordCounts{
		"comedy": {"funny": 1, "happy": 1, "joke": 1},
		"drama":  {"sad": 1, "loss": 1, "grief": 1},
	}, model.WordCounts)
	req.Equal(6, model.VocabularySize)
}

func TestLearner_Learn_Vocabulary_Is_Global(t *testing.T) {
	req := require.New(t)
	learner := NewLearner(logs.GetLoggerFromLevel(slog.LevelDebug))

	// "love" appears in both genres but is a single vocabulary word
	model, err := learner.Learn([]domain.CorpusEntry{
		{ID: "1", Genre: "romance", Description: "Love, love and LOVE"},
		{ID: "2", Genre: "horror", Description: "blood love"},
		{ID: "3", Genre: "romance", Description: "kiss"},
	})
	req.NoError(err)
	req.Equal(map[string]int{"love": 3, "and": 1, "kiss": 1}, model.WordCounts["romance"])
	req.Equal(map[string]int{"blood": 1, "love": 1}, model.WordCounts["horror"])
	req.Equal(4, model.VocabularySize)
}

func TestLearner_Learn_Is_Order_Independent(t *testing.T) {
	req := require.New(t)
	learner := NewLearner(logs.GetLoggerFromLevel(slog.LevelError))
	entries := []domain.CorpusEntry{
		{ID: "1", Genre: "action", Description: "car chase explosion"},
		{ID: "2", Genre: "action", Description: "gun chase"},
		{ID: "3", Genre: "drama", Description: "tears chase"},
	}
	reversed := []domain.CorpusEntry{entries[2], entries[1], entries[0]}

	forward, err := learner.Learn(entries)
	req.NoError(err)
	backward, err := learner.Learn(reversed)
	req.NoError(err)
	req.Equal(forward, backward)
}

func TestLearner_Learn_Keeps_Empty_Words(t *testing.T) {
	req := require.New(t)
	learner := NewLearner(logs.GetLoggerFromLevel(slog.LevelDebug))

	model, err := learner.Learn([]domain.CorpusEntry{
		{ID: "1", Genre: "thriller", Description: "wait - what ... ?"},
	})
	req.NoError(err)
	req.Equal(map[string]int{"wait": 1, "what": 1, "": 3}, model.WordCounts["thriller"])
	req.Equal(3, model.VocabularySize)
}

func TestLearner_Learn_Malformed_Entries(t *testing.T) {
	learner := NewLearner(logs.GetLoggerFromLevel(slog.LevelDebug))

	tests := []struct {
		name  string
		entry domain.CorpusEntry
	}{
		{"Empty id", domain.CorpusEntry{Genre: "drama", Description: "tears"}},
		{"Empty genre", domain.CorpusEntry{ID: "1", Description: "tears"}},
		{"Invalid UTF-8", domain.CorpusEntry{ID: "1", Genre: "drama", Description: "te\xffars"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := learner.Learn([]domain.CorpusEntry{tt.entry})
			require.True(t, goerrors.Is(err, errors.ErrMalformedInput))
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Joy,", "joy"},
		{"San-Francisco.", "sanfrancisco"},
		{"don't", "dont"},
		{"...", ""},
		{"été!", "été"},
		{"«quoted»", "«quoted»"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, NormalizeWord(tt.input))
		})
	}
}
