package catalog

import (
	"context"
	"movie-rec/domain"
)

// TitleLookup resolves a catalog id to its display title.
// Unknown ids resolve to domain.TitleNotFound without an error.
type TitleLookup interface {
	TitleOf(ctx context.Context, id string) (string, error)
}

// ScanLookup reads the description file from the top on every call.
type ScanLookup struct {
	layout Layout
}

func NewScanLookup(layout Layout) *ScanLookup {
	return &ScanLookup{layout: layout}
}

func (l *ScanLookup) TitleOf(_ context.Context, id string) (string, error) {
	title := domain.TitleNotFound
	var idCol, titleCol int
	resolve := func(header []string) (err error) {
		if idCol, err = resolveColumn(header, l.layout.IDColumn); err != nil {
			return err
		}
		titleCol, err = resolveColumn(header, l.layout.TitleColumn)
		return err
	}
	err := scanRows(l.layout.DescriptionPath, true, resolve, func(line int, row []string) error {
		if idCol >= len(row) || row[idCol] != id {
			return nil
		}
		value, err := cell(row, titleCol, "title", line)
		if err != nil {
			return err
		}
		title = value
		return errStopScan
	})
	if err != nil {
		return "", err
	}
	return title, nil
}

// IndexLookup keeps an id -> title map built once from the catalog.
// The first row of a duplicated id wins, like a scan would.
type IndexLookup struct {
	titles map[string]string
}

func NewIndexLookup(entries []domain.CatalogEntry) *IndexLookup {
	titles := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, ok := titles[e.ID]; !ok {
			titles[e.ID] = e.Title
		}
	}
	return &IndexLookup{titles: titles}
}

func (l *IndexLookup) TitleOf(_ context.Context, id string) (string, error) {
	if title, ok := l.titles[id]; ok {
		return title, nil
	}
	return domain.TitleNotFound, nil
}
