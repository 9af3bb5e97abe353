package internal

import (
	"fmt"
	"movie-rec/catalog"
	"movie-rec/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendMemory = "memory"

	LookupScan   = "scan"
	LookupIndex  = "index"
	LookupSearch = "search"
)

type Config struct {
	CorpusDescriptionPath string `env:"CORPUS_DESCRIPTION_PATH,default=./archive/contentDataPrime.csv" validate:"required"`
	CorpusGenrePath       string `env:"CORPUS_GENRE_PATH,default=./archive/contentDataGenre.csv" validate:"required"`
	IDColumn              string `env:"ID_COLUMN,default=#1" validate:"required"`
	TitleColumn           string `env:"TITLE_COLUMN,default=#3" validate:"required"`
	DescriptionColumn     string `env:"DESCRIPTION_COLUMN,default=#11" validate:"required"`
	GenreIDColumn         string `env:"GENRE_ID_COLUMN,default=#1" validate:"required"`
	GenreColumn           string `env:"GENRE_COLUMN,default=#2" validate:"required"`
	CacheBackend          string `env:"CACHE_BACKEND,default=file"`
	CacheDir              string `env:"CACHE_DIR,default=./cache"`
	BadgerFilepath        string `env:"BADGER_FILEPATH,default=./data/badger"`
	TitleLookup           string `env:"TITLE_LOOKUP,default=scan"`
	BlugeFilepath         string `env:"BLUGE_FILEPATH,default=./data/bluge"`
	NormalizeQueryTokens  bool   `env:"NORMALIZE_QUERY_TOKENS,default=false"`
	LogLevel              string `env:"LOG_LEVEL,default=INFO" validate:"required"`
}

var validate = validator.New()

// Validate checks required values and the backend and lookup choices.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	switch strings.ToLower(c.CacheBackend) {
	case BackendFile, BackendBadger, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownBackend, c.CacheBackend)
	}
	switch strings.ToLower(c.TitleLookup) {
	case LookupScan, LookupIndex, LookupSearch:
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownLookup, c.TitleLookup)
	}
	return nil
}

func (c Config) Layout() catalog.Layout {
	return catalog.Layout{
		DescriptionPath:   c.CorpusDescriptionPath,
		GenrePath:         c.CorpusGenrePath,
		IDColumn:          c.IDColumn,
		TitleColumn:       c.TitleColumn,
		DescriptionColumn: c.DescriptionColumn,
		GenreIDColumn:     c.GenreIDColumn,
		GenreColumn:       c.GenreColumn,
	}
}
