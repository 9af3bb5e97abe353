package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"movie-rec/cache"
	"movie-rec/catalog"
	"movie-rec/fingerprint"
	"movie-rec/services"
	"time"

	"github.com/goccy/go-json"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
	Store  cache.Store
}

// SetupSuite loads the environment configuration and skips when no export is configured
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.DescriptionPath == "" || s.Config.GenrePath == "" {
		s.T().Skip("E2E_DESCRIPTION_PATH and E2E_GENRE_PATH are not set")
	}
	s.Store, err = cache.NewFileStore(s.T().TempDir())
	s.Require().NoError(err)
}

// WithService builds a fresh service on the suite store within a contextual test step
func (s *BaseSuite) WithService(name string, fn func(ctx context.Context, service *services.RecommendationService)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	log := logs.GetLoggerFromLevel(slog.LevelInfo)
	layout := catalog.DefaultLayout(s.Config.DescriptionPath, s.Config.GenrePath)
	service := services.NewRecommendationService(log,
		catalog.NewCSVSource(log, layout),
		catalog.NewScanLookup(layout),
		s.Store,
		fingerprint.Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	fn(ctx, service)
	s.T().Logf("%s done in %v", name, time.Since(start))
}

// Dump logs the explanation as JSON when E2E_DEBUG_JSON is enabled
func (s *BaseSuite) Dump(explanation services.Explanation) {
	if !s.Config.DebugJSON {
		return
	}
	data, err := json.MarshalIndent(explanation, "", "  ")
	s.Require().NoError(err)
	s.T().Log(string(data))
}
