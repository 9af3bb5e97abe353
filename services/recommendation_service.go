package services

import (
	"context"
	"fmt"
	"log/slog"
	"movie-rec/cache"
	"movie-rec/catalog"
	"movie-rec/domain"
	"movie-rec/fingerprint"
	"movie-rec/learning"
	"movie-rec/recommender"

	"github.com/abadojack/whatlanggo"
)

type IRecommendationService interface {
	Recommend(ctx context.Context, description, review string) (string, error)
	Explain(ctx context.Context, description, review string) (Explanation, error)
	Rebuild() error
}

// Explanation details how a recommendation was reached.
type Explanation struct {
	Query          domain.Fingerprint
	Recommendation domain.Recommendation
	Match          domain.Fingerprint
	Title          string
}

// RecommendationService wires the learner, the fingerprint generator and the
// recommender around a cache store. The learned model and the catalog
// fingerprints are built on first use and read back from the store afterwards.
type RecommendationService struct {
	log       *slog.Logger
	source    catalog.Source
	titles    catalog.TitleLookup
	store     cache.Store
	learner   *learning.Learner
	generator fingerprint.Generator
}

func NewRecommendationService(
	log *slog.Logger,
	source catalog.Source,
	titles catalog.TitleLookup,
	store cache.Store,
	opts fingerprint.Options,
) *RecommendationService {
	return &RecommendationService{
		log:       log,
		source:    source,
		titles:    titles,
		store:     store,
		learner:   learning.NewLearner(log),
		generator: fingerprint.NewGenerator(opts),
	}
}

// LearnedModel returns the cached model, learning it from the corpus when absent.
func (s *RecommendationService) LearnedModel() (domain.LearnedModel, error) {
	return cache.GetOrBuild(s.log, s.store, cache.KeyLearnedModel, cache.JSONCodec[domain.LearnedModel]{},
		func() (domain.LearnedModel, error) {
			entries, err := s.source.CorpusEntries()
			if err != nil {
				return domain.LearnedModel{}, fmt.Errorf("load corpus: %w", err)
			}
			return s.learner.Learn(entries)
		})
}

// CatalogFingerprints returns the cached catalog index, computing it with model when absent.
func (s *RecommendationService) CatalogFingerprints(model domain.LearnedModel) (*domain.FingerprintIndex, error) {
	return cache.GetOrBuild(s.log, s.store, cache.KeyCatalogFingerprints, cache.JSONCodec[*domain.FingerprintIndex]{},
		func() (*domain.FingerprintIndex, error) {
			entries, err := s.source.CatalogEntries()
			if err != nil {
				return nil, fmt.Errorf("load catalog: %w", err)
			}
			return fingerprint.BuildIndex(s.log, s.generator, entries, model), nil
		})
}

// Recommend returns the title of the catalog movie closest to the description
// and review, or an empty string when the catalog is empty.
func (s *RecommendationService) Recommend(ctx context.Context, description, review string) (string, error) {
	explanation, err := s.Explain(ctx, description, review)
	if err != nil {
		return "", err
	}
	if !explanation.Recommendation.OK {
		s.log.Info("No recommendation found")
		return "", nil
	}
	return explanation.Title, nil
}

func (s *RecommendationService) Explain(ctx context.Context, description, review string) (Explanation, error) {
	model, err := s.LearnedModel()
	if err != nil {
		return Explanation{}, err
	}

	text := description + " " + review
	info := whatlanggo.Detect(text)
	s.log.Debug("Query language detected", "lang", info.Lang.Iso6391(), "confidence", info.Confidence)

	query := s.generator.Fingerprint(text, model)
	index, err := s.CatalogFingerprints(model)
	if err != nil {
		return Explanation{}, err
	}
	s.log.Debug("Comparing query with catalog", "candidates", index.Len())

	rec, err := recommender.Recommend(query, index)
	if err != nil {
		return Explanation{}, err
	}
	explanation := Explanation{Query: query, Recommendation: rec}
	if !rec.OK {
		return explanation, nil
	}

	explanation.Match, _ = index.Get(rec.ID)
	explanation.Title, err = s.titles.TitleOf(ctx, rec.ID)
	if err != nil {
		return Explanation{}, fmt.Errorf("resolve title of %s: %w", rec.ID, err)
	}
	s.log.Info("Recommendation found", "id", rec.ID, "title", explanation.Title, "score", rec.Score)
	return explanation, nil
}

// Rebuild drops both cached artifacts so that the next call recomputes them.
func (s *RecommendationService) Rebuild() error {
	for _, key := range []string{cache.KeyLearnedModel, cache.KeyCatalogFingerprints} {
		if err := s.store.Delete(key); err != nil {
			return fmt.Errorf("drop %s: %w", key, err)
		}
	}
	s.log.Info("Cached artifacts dropped")
	return nil
}
