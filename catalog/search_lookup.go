package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"movie-rec/domain"
	"os"

	"github.com/blugelabs/bluge"
)

const titleField = "title"

// SearchLookup resolves titles through a bluge index where each catalog
// entry is a document identified by its catalog id.
type SearchLookup struct {
	writer *bluge.Writer
	log    *slog.Logger
}

// OpenSearchLookup indexes entries into a fresh bluge index at dir. Whatever an
// earlier run left in dir is dropped first, so only ids of entries resolve.
func OpenSearchLookup(log *slog.Logger, dir string, entries []domain.CatalogEntry) (*SearchLookup, error) {
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("reset title index: %w", err)
	}
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	lookup, err := NewSearchLookup(log, writer, entries)
	if err != nil {
		_ = writer.Close()
		return nil, err
	}
	return lookup, nil
}

// NewSearchLookup indexes the catalog into writer. The first row of a duplicated id wins.
func NewSearchLookup(log *slog.Logger, writer *bluge.Writer, entries []domain.CatalogEntry) (*SearchLookup, error) {
	batch := bluge.NewBatch()
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		doc := bluge.NewDocument(e.ID).
			AddField(bluge.NewTextField(titleField, e.Title).StoreValue())
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		return nil, fmt.Errorf("index catalog titles: %w", err)
	}
	log.Debug("Catalog titles indexed", "documents", len(seen))
	return &SearchLookup{writer: writer, log: log}, nil
}

func (l *SearchLookup) TitleOf(ctx context.Context, id string) (string, error) {
	reader, err := l.writer.Reader()
	if err != nil {
		return "", fmt.Errorf("open title index reader: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	query := bluge.NewTermQuery(id).SetField("_id")
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(1, query))
	if err != nil {
		return "", fmt.Errorf("search title of %s: %w", id, err)
	}
	match, err := matches.Next()
	if err != nil {
		return "", fmt.Errorf("read title of %s: %w", id, err)
	}
	if match == nil {
		return domain.TitleNotFound, nil
	}

	title := domain.TitleNotFound
	err = match.VisitStoredFields(func(field string, value []byte) bool {
		if field == titleField {
			title = string(value)
			return false
		}
		return true
	})
	if err != nil {
		return "", fmt.Errorf("load title of %s: %w", id, err)
	}
	return title, nil
}

func (l *SearchLookup) Close() error {
	l.log.Debug("Closing Bluge...")
	return l.writer.Close()
}
