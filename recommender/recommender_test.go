package recommender

import (
	goerrors "errors"
	"movie-rec/domain"
	"movie-rec/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func indexOf(entries ...domain.IndexEntry) *domain.FingerprintIndex {
	index := domain.NewFingerprintIndex()
	for _, e := range entries {
		index.Put(e.ID, e.Fingerprint)
	}
	return index
}

func TestRecommend_Closest_Fingerprint(t *testing.T) {
	req := require.New(t)
	query := domain.Fingerprint{"comedy": 0.05, "drama": 1.0}
	index := indexOf(
		domain.IndexEntry{ID: "1", Fingerprint: domain.Fingerprint{"comedy": 0.002, "drama": 1.0}},
		domain.IndexEntry{ID: "2", Fingerprint: domain.Fingerprint{"comedy": 1.0, "drama": 0.002}},
	)

	rec, err := Recommend(query, index)
	req.NoError(err)
	req.True(rec.OK)
	req.Equal("1", rec.ID)
	req.InDelta(0.024, rec.Score, 1e-12)
}

func TestRecommend_Tie_Keeps_First_Inserted(t *testing.T) {
	req := require.New(t)
	query := domain.Fingerprint{"comedy": 0.5, "drama": 0.5}
	same := domain.Fingerprint{"comedy": 0.25, "drama": 0.75}

	rec, err := Recommend(query, indexOf(
		domain.IndexEntry{ID: "b", Fingerprint: same},
		domain.IndexEntry{ID: "a", Fingerprint: same},
	))
	req.NoError(err)
	req.Equal("b", rec.ID)

	rec, err = Recommend(query, indexOf(
		domain.IndexEntry{ID: "a", Fingerprint: same},
		domain.IndexEntry{ID: "b", Fingerprint: same},
	))
	req.NoError(err)
	req.Equal("a", rec.ID)
}

func TestRecommend_Empty_Index(t *testing.T) {
	req := require.New(t)
	rec, err := Recommend(domain.Fingerprint{"comedy": 1}, domain.NewFingerprintIndex())
	req.NoError(err)
	req.False(rec.OK)
	req.Empty(rec.ID)

	rec, err = Recommend(domain.Fingerprint{"comedy": 1}, nil)
	req.NoError(err)
	req.False(rec.OK)
}

func TestRecommend_Query_Without_Genres(t *testing.T) {
	req := require.New(t)
	rec, err := Recommend(domain.Fingerprint{}, indexOf(
		domain.IndexEntry{ID: "x", Fingerprint: domain.Fingerprint{}},
		domain.IndexEntry{ID: "y", Fingerprint: domain.Fingerprint{}},
	))
	req.NoError(err)
	req.True(rec.OK)
	req.Equal("x", rec.ID)
	req.Zero(rec.Score)
}

func TestRecommend_Genre_Mismatch(t *testing.T) {
	tests := []struct {
		name  string
		query domain.Fingerprint
		other domain.Fingerprint
	}{
		{"Missing genre in catalog", domain.Fingerprint{"comedy": 1, "drama": 1}, domain.Fingerprint{"comedy": 1}},
		{"Missing genre in query", domain.Fingerprint{"comedy": 1}, domain.Fingerprint{"comedy": 1, "drama": 1}},
		{"Different genres", domain.Fingerprint{"comedy": 1}, domain.Fingerprint{"horror": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Recommend(tt.query, indexOf(domain.IndexEntry{ID: "1", Fingerprint: tt.other}))
			require.True(t, goerrors.Is(err, errors.ErrContractViolation))
		})
	}
}

func TestDistance_Genres_Outside_Fingerprints(t *testing.T) {
	query := domain.Fingerprint{"comedy": 0.5, "drama": 0.5}
	other := domain.Fingerprint{"comedy": 0.25, "drama": 0.75}
	tests := []struct {
		name   string
		query  domain.Fingerprint
		other  domain.Fingerprint
		genres []string
	}{
		{"Genre unknown to both", query, other, []string{"comedy", "horror"}},
		{"Genre unknown to query", domain.Fingerprint{"comedy": 0.5, "horror": 0.5}, other, []string{"comedy", "drama"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Distance(tt.query, tt.other, tt.genres)
			require.True(t, goerrors.Is(err, errors.ErrContractViolation), "got %v", err)
		})
	}

	score, err := Distance(query, other, query.Genres())
	require.NoError(t, err)
	require.InDelta(t, 0.25, score, 1e-12)
}
