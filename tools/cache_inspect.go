package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"movie-rec/cache"
	"movie-rec/domain"
	"movie-rec/infrastructure/storage"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type inspectConfig struct {
	// INSPECT_BADGER_FILEPATH selects the badger store, the file store is read otherwise
	BadgerFilepath string `envconfig:"INSPECT_BADGER_FILEPATH"`
	CacheDir       string `envconfig:"INSPECT_CACHE_DIR" default:"./cache"`
}

func main() {
	genres := flag.Bool("genres", false, "Print per-genre counts of the learned model")
	flag.Parse()

	var cfg inspectConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Error while reading config: ", err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal("Error while opening store: ", err)
	}
	defer closeStore()

	keys, err := store.Keys()
	if err != nil {
		log.Fatal(err)
	}

	table := newTable([]string{"Key", "Size", "Summary"})
	var model *domain.LearnedModel
	for _, key := range keys {
		data, err := store.Get(key)
		if err != nil {
			fmt.Printf("Error reading key %s: %v\n", key, err)
			continue
		}
		summary, learned := summarize(key, data)
		if learned != nil {
			model = learned
		}
		table.Append([]string{key, strconv.Itoa(len(data)), summary})
	}
	table.Render()

	if *genres && model != nil {
		fmt.Println()
		genreTable := newTable([]string{"Genre", "Distinct words", "Occurrences"})
		for _, genre := range model.Genres() {
			genreTable.Append([]string{
				genre,
				strconv.Itoa(model.DistinctWords(genre)),
				strconv.Itoa(lo.Sum(lo.Values(model.WordCounts[genre]))),
			})
		}
		genreTable.Render()
	}
}

// summarize describes a stored artifact and returns the learned model when key holds one.
func summarize(key string, data []byte) (string, *domain.LearnedModel) {
	switch key {
	case cache.KeyLearnedModel:
		decoded, err := cache.JSONCodec[domain.LearnedModel]{}.Decode(data)
		if err != nil {
			return fmt.Sprintf("unreadable: %v", err), nil
		}
		return fmt.Sprintf("%d genres, vocabulary %d", len(decoded.WordCounts), decoded.VocabularySize), &decoded
	case cache.KeyCatalogFingerprints:
		index, err := cache.JSONCodec[*domain.FingerprintIndex]{}.Decode(data)
		if err != nil {
			return fmt.Sprintf("unreadable: %v", err), nil
		}
		return fmt.Sprintf("%d fingerprints", index.Len()), nil
	default:
		return "unknown artifact", nil
	}
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func openStore(cfg inspectConfig) (cache.Store, func(), error) {
	if cfg.BadgerFilepath == "" {
		info, err := os.Stat(cfg.CacheDir)
		if err != nil {
			return nil, nil, fmt.Errorf("cache dir: %w", err)
		}
		if !info.IsDir() {
			return nil, nil, fmt.Errorf("cache dir: %s is not a directory", cfg.CacheDir)
		}
		store, err := cache.NewFileStore(cfg.CacheDir)
		return store, func() {}, err
	}
	opts := badger.DefaultOptions(cfg.BadgerFilepath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewBadgerStore(db, logs.GetLoggerFromLevel(slog.LevelError)), func() { _ = db.Close() }, nil
}
