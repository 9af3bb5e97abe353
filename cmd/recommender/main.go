package main

import (
	"context"
	"fmt"
	"log/slog"
	"movie-rec/cache"
	"movie-rec/catalog"
	"movie-rec/domain"
	"movie-rec/fingerprint"
	"movie-rec/infrastructure/storage"
	"movie-rec/internal"
	"movie-rec/services"
	"os"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Exit codes to provide meaningful status to the calling shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "recommender: %v\n", err)
	}
	os.Exit(code)
}

// run keeps every defer (badger, bluge) executed before the process exits.
func run(args []string) (int, error) {
	// 1. Configuration & Logger
	opts, err := parseFlags(args)
	if err != nil {
		return exitConfig, err
	}
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel).With("run_id", uuid.NewString())

	// 2. Cache store
	store, closeStore, err := openStore(config, log)
	if err != nil {
		return exitRuntime, err
	}
	defer closeStore()

	// 3. Sources & title lookup
	source := catalog.NewCSVSource(log, config.Layout())
	titles, closeTitles, err := openTitleLookup(config, log, source)
	if err != nil {
		return exitRuntime, err
	}
	defer closeTitles()

	service := services.NewRecommendationService(log, source, titles, store, fingerprint.Options{
		NormalizeQueryTokens: config.NormalizeQueryTokens,
	})
	if opts.rebuild {
		if err := service.Rebuild(); err != nil {
			return exitRuntime, err
		}
	}

	// 4. Recommendation
	ctx := context.Background()
	if !opts.explain {
		title, err := service.Recommend(ctx, opts.description, opts.review)
		if err != nil {
			return exitRuntime, err
		}
		printTitle(title)
		return exitOK, nil
	}

	explanation, err := service.Explain(ctx, opts.description, opts.review)
	if err != nil {
		return exitRuntime, err
	}
	printTitle(explanation.Title)
	printExplanation(explanation)
	return exitOK, nil
}

func openStore(config internal.Config, log *slog.Logger) (cache.Store, func(), error) {
	switch strings.ToLower(config.CacheBackend) {
	case internal.BackendBadger:
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		return storage.NewBadgerStore(db, log), func() {
			log.Debug("Closing BadgerDB...")
			_ = db.Close()
		}, nil
	case internal.BackendMemory:
		return cache.NewMemoryStore(), func() {}, nil
	default:
		store, err := cache.NewFileStore(config.CacheDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}

func openTitleLookup(config internal.Config, log *slog.Logger, source *catalog.CSVSource) (catalog.TitleLookup, func(), error) {
	switch strings.ToLower(config.TitleLookup) {
	case internal.LookupIndex:
		entries, err := source.CatalogEntries()
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewIndexLookup(entries), func() {}, nil
	case internal.LookupSearch:
		entries, err := source.CatalogEntries()
		if err != nil {
			return nil, nil, err
		}
		lookup, err := catalog.OpenSearchLookup(log, config.BlugeFilepath, entries)
		if err != nil {
			return nil, nil, err
		}
		return lookup, func() { _ = lookup.Close() }, nil
	default:
		return catalog.NewScanLookup(config.Layout()), func() {}, nil
	}
}

func printTitle(title string) {
	if title == "" {
		fmt.Println(color.New(color.FgYellow).Render("No recommendation found."))
		return
	}
	fmt.Println(color.New(color.FgGreen, color.OpBold).Render(title))
}

func printExplanation(explanation services.Explanation) {
	if !explanation.Recommendation.OK {
		return
	}
	fmt.Printf("distance %.6g to catalog id %s\n", explanation.Recommendation.Score, explanation.Recommendation.ID)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Genre", "Your movie", "Recommended"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, genre := range explanation.Query.Genres() {
		table.Append([]string{genre, score(explanation.Query, genre), score(explanation.Match, genre)})
	}
	table.Render()
}

func score(fp domain.Fingerprint, genre string) string {
	value, ok := fp[genre]
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.6g", value)
}
