// Package catalog reads the corpus and catalog tabular sources and resolves catalog ids to titles.
package catalog

import (
	"fmt"
	"log/slog"
	"movie-rec/domain"
)

// Source yields the labeled corpus and the recommendable catalog.
type Source interface {
	CorpusEntries() ([]domain.CorpusEntry, error)
	CatalogEntries() ([]domain.CatalogEntry, error)
}

// Layout locates the two delimited files and the columns used in each of them.
// Column selectors are header names or 1-based "#<n>" positions.
type Layout struct {
	DescriptionPath   string
	GenrePath         string
	IDColumn          string
	TitleColumn       string
	DescriptionColumn string
	GenreIDColumn     string
	GenreColumn       string
}

// DefaultLayout matches the historical export: id, title and description in
// columns 1, 3 and 11 of the description file, id and genre in columns 1 and 2
// of the genre file.
func DefaultLayout(descriptionPath, genrePath string) Layout {
	return Layout{
		DescriptionPath:   descriptionPath,
		GenrePath:         genrePath,
		IDColumn:          "#1",
		TitleColumn:       "#3",
		DescriptionColumn: "#11",
		GenreIDColumn:     "#1",
		GenreColumn:       "#2",
	}
}

// CSVSource reads a description file (first row is a header) and a genre file
// (every row is data) joined on the id column.
type CSVSource struct {
	layout Layout
	log    *slog.Logger
}

func NewCSVSource(log *slog.Logger, layout Layout) *CSVSource {
	return &CSVSource{layout: layout, log: log}
}

// CatalogEntries returns every row of the description file, in file order.
func (s *CSVSource) CatalogEntries() ([]domain.CatalogEntry, error) {
	var entries []domain.CatalogEntry
	err := s.scanDescriptions(func(record descriptionRecord) error {
		entries = append(entries, domain.CatalogEntry{
			ID:          record.ID,
			Title:       record.Title,
			Description: record.Description,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("Catalog loaded", "path", s.layout.DescriptionPath, "rows", len(entries))
	return entries, nil
}

// CorpusEntries joins every description row with the first genre row sharing its id.
// Description rows without a genre are not labeled and are left out.
func (s *CSVSource) CorpusEntries() ([]domain.CorpusEntry, error) {
	genres, err := s.genresByID()
	if err != nil {
		return nil, err
	}
	var entries []domain.CorpusEntry
	unlabeled := 0
	err = s.scanDescriptions(func(record descriptionRecord) error {
		genre, ok := genres[record.ID]
		if !ok {
			unlabeled++
			return nil
		}
		entries = append(entries, domain.CorpusEntry{
			ID:          record.ID,
			Genre:       genre,
			Description: record.Description,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Corpus joined", "labeled", len(entries), "unlabeled", unlabeled)
	return entries, nil
}

func (s *CSVSource) genresByID() (map[string]string, error) {
	var idCol, genreCol int
	genres := make(map[string]string)
	resolve := func(header []string) (err error) {
		if idCol, err = resolveColumn(header, s.layout.GenreIDColumn); err != nil {
			return err
		}
		genreCol, err = resolveColumn(header, s.layout.GenreColumn)
		return err
	}
	err := scanRows(s.layout.GenrePath, false, resolve, func(line int, row []string) error {
		record, err := toGenreRecord(row, idCol, genreCol, line)
		if err != nil {
			return err
		}
		if _, exists := genres[record.ID]; !exists {
			genres[record.ID] = record.Genre
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read genres: %w", err)
	}
	return genres, nil
}

func (s *CSVSource) scanDescriptions(fn func(record descriptionRecord) error) error {
	var idCol, titleCol, descCol int
	resolve := func(header []string) (err error) {
		if idCol, err = resolveColumn(header, s.layout.IDColumn); err != nil {
			return err
		}
		if titleCol, err = resolveColumn(header, s.layout.TitleColumn); err != nil {
			return err
		}
		descCol, err = resolveColumn(header, s.layout.DescriptionColumn)
		return err
	}
	err := scanRows(s.layout.DescriptionPath, true, resolve, func(line int, row []string) error {
		record, err := toDescriptionRecord(row, idCol, titleCol, descCol, line)
		if err != nil {
			return err
		}
		return fn(record)
	})
	if err != nil {
		return fmt.Errorf("read descriptions: %w", err)
	}
	return nil
}

func toDescriptionRecord(row []string, idCol, titleCol, descCol, line int) (descriptionRecord, error) {
	var record descriptionRecord
	var err error
	if record.ID, err = cell(row, idCol, "id", line); err != nil {
		return record, err
	}
	if record.Title, err = cell(row, titleCol, "title", line); err != nil {
		return record, err
	}
	if record.Description, err = cell(row, descCol, "description", line); err != nil {
		return record, err
	}
	return record, checkRecord(record, line)
}

func toGenreRecord(row []string, idCol, genreCol, line int) (genreRecord, error) {
	var record genreRecord
	var err error
	if record.ID, err = cell(row, idCol, "id", line); err != nil {
		return record, err
	}
	if record.Genre, err = cell(row, genreCol, "genre", line); err != nil {
		return record, err
	}
	return record, checkRecord(record, line)
}

// StaticSource serves entries held in memory.
type StaticSource struct {
	Corpus  []domain.CorpusEntry
	Catalog []domain.CatalogEntry
}

func (s StaticSource) CorpusEntries() ([]domain.CorpusEntry, error) {
	return s.Corpus, nil
}

func (s StaticSource) CatalogEntries() ([]domain.CatalogEntry, error) {
	return s.Catalog, nil
}
