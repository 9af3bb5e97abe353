package fingerprint

import (
	"log/slog"
	"movie-rec/domain"
	"strings"
)

// BuildIndex fingerprints the lower-cased description of every catalog entry, in catalog order.
func BuildIndex(log *slog.Logger, g Generator, entries []domain.CatalogEntry, model domain.LearnedModel) *domain.FingerprintIndex {
	index := domain.NewFingerprintIndex()
	for _, entry := range entries {
		log.Debug("Computing fingerprint", "id", entry.ID)
		index.Put(entry.ID, g.Fingerprint(strings.ToLower(entry.Description), model))
	}
	log.Info("Catalog fingerprints computed", "count", index.Len())
	return index
}
