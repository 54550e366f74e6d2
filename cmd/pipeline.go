package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rana718/vitalgen/internal/config"
	"github.com/Rana718/vitalgen/internal/corpus"
	"github.com/Rana718/vitalgen/internal/export"
	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/logging"
	"github.com/Rana718/vitalgen/internal/projector"
)

// run is one pipeline execution shared by generate and load.
type run struct {
	cfg     *config.Config
	log     *zap.Logger
	dataset *generator.Dataset
	docs    export.Documents
	misses  int
	elapsed time.Duration
}

// loadConfig reads the config and applies the --records override.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("records") {
		records, _ := cmd.Flags().GetInt("records")
		cfg.Generation.Records = records
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func execute(cfg *config.Config) (*run, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return nil, err
	}

	c, err := loadCorpus(cfg.CorpusPath)
	if err != nil {
		return nil, err
	}

	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	logger.Debug("starting generation", zap.Int64("seed", s), zap.Int("records", cfg.Generation.Records))

	start := time.Now()
	g, err := generator.New(cfg.Generation, c,
		generator.WithRand(rand.New(rand.NewSource(s))),
		generator.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	color.Cyan("🧬 Generating population...")
	ds, err := g.Run()
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	color.Cyan("🔗 Projecting documents...")
	p := projector.New(ds, logger)
	marriages, deaths := p.Project()

	return &run{
		cfg:     cfg,
		log:     logger,
		dataset: ds,
		docs:    export.Documents{Marriages: marriages, Deaths: deaths},
		misses:  p.Misses(),
		elapsed: time.Since(start),
	}, nil
}

func loadCorpus(path string) (*corpus.Corpus, error) {
	if path == "" {
		return corpus.Default()
	}
	return corpus.Load(path)
}
