package fingerprint

import (
	"log/slog"
	"movie-rec/domain"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func sampleModel() domain.LearnedModel {
	return domain.LearnedModel{
		WordCounts: domain.WordCounts{
			"comedy": {"funny": 1, "happy": 1, "joke": 1},
			"drama":  {"sad": 1, "loss": 1, "grief": 1},
		},
		VocabularySize: 6,
	}
}

func TestGenerator_Fingerprint_Scores(t *testing.T) {
	req := require.New(t)
	fp := NewGenerator(Options{}).Fingerprint("funny happy", sampleModel())

	// (1+1)/(3+6) squared for comedy, no matching word for drama
	req.InDelta(4.0/81.0, fp["comedy"], 1e-12)
	req.Equal(1.0, fp["drama"])
	req.Len(fp, 2)
}

func TestGenerator_Fingerprint_Vacuous_Product(t *testing.T) {
	req := require.New(t)
	fp := NewGenerator(Options{}).Fingerprint("nothing known here", sampleModel())
	req.Equal(domain.Fingerprint{"comedy": 1.0, "drama": 1.0}, fp)

	empty := NewGenerator(Options{}).Fingerprint("", sampleModel())
	req.Equal(domain.Fingerprint{"comedy": 1.0, "drama": 1.0}, empty)
}

func TestGenerator_Fingerprint_Ignores_Unknown_Words(t *testing.T) {
	req := require.New(t)
	g := NewGenerator(Options{})
	model := sampleModel()

	base := g.Fingerprint("sad joke", model)
	noisy := g.Fingerprint("zebra sad quantum joke xylophone", model)
	req.Equal(base, noisy)
}

func TestGenerator_Fingerprint_Positive_Scores(t *testing.T) {
	req := require.New(t)
	model := domain.LearnedModel{
		WordCounts: domain.WordCounts{
			"action": {"car": 5, "gun": 2, "": 1},
			"drama":  {"tears": 3},
		},
		VocabularySize: 4,
	}
	fp := NewGenerator(Options{}).Fingerprint("car car gun tears tears tears", model)
	for genre, score := range fp {
		req.Greater(score, 0.0, genre)
	}
	req.InDelta((6.0/7.0)*(6.0/7.0)*(3.0/7.0), fp["action"], 1e-12)
	req.InDelta((4.0/5.0)*(4.0/5.0)*(4.0/5.0), fp["drama"], 1e-12)
}

func TestGenerator_Fingerprint_Raw_Query_Tokens(t *testing.T) {
	req := require.New(t)
	model := sampleModel()

	raw := NewGenerator(Options{}).Fingerprint("Funny, happy!", model)
	req.Equal(1.0, raw["comedy"], "punctuated or capitalised tokens must not match")

	normalized := NewGenerator(Options{NormalizeQueryTokens: true}).Fingerprint("Funny, happy!", model)
	req.InDelta(4.0/81.0, normalized["comedy"], 1e-12)
	req.Equal(1.0, normalized["drama"])
}

func TestBuildIndex_Keeps_Catalog_Order(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	entries := []domain.CatalogEntry{
		{ID: "2", Title: "B", Description: "SAD loss"},
		{ID: "1", Title: "A", Description: "funny joke"},
		{ID: "3", Title: "C", Description: ""},
	}

	index := BuildIndex(log, NewGenerator(Options{}), entries, sampleModel())
	req.Equal(3, index.Len())
	ids := make([]string, 0, index.Len())
	for _, e := range index.Entries() {
		ids = append(ids, e.ID)
	}
	req.Equal([]string{"2", "1", "3"}, ids)

	// descriptions are lower-cased before scoring
	fp, ok := index.Get("2")
	req.True(ok)
	req.InDelta(4.0/81.0, fp["drama"], 1e-12)

	fp, ok = index.Get("3")
	req.True(ok)
	req.Equal(domain.Fingerprint{"comedy": 1.0, "drama": 1.0}, fp)
}
