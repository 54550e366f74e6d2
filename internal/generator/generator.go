// Package generator synthesizes the vital-records population: reference
// pools, person triads, marriages with witnesses, and deaths.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rana718/vitalgen/internal/config"
	"github.com/Rana718/vitalgen/internal/corpus"
	"github.com/Rana718/vitalgen/internal/sampling"
)

// ErrPoolExhausted is logged, never returned, when an eligible-person pool
// runs dry before the requested record count is reached.
var ErrPoolExhausted = errors.New("pool exhausted")

type Option func(*Generator)

// WithRand fixes the random source, mostly for tests.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) { g.rnd = rnd }
}

func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) { g.log = logger }
}

type Generator struct {
	cfg    config.Generation
	corpus *corpus.Corpus
	rnd    *rand.Rand
	pick   *sampling.Picker
	log    *zap.Logger
}

func New(cfg config.Generation, c *corpus.Corpus, opts ...Option) (*Generator, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: corpus is required", sampling.ErrInvalidArgument)
	}

	g := &Generator{cfg: cfg, corpus: c}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = sampling.NewRand()
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	g.pick = sampling.NewPicker(g.rnd)
	return g, nil
}

// Run builds the pools, the population and the derived events.
func (g *Generator) Run() (*Dataset, error) {
	start := time.Now()

	pools, err := g.BuildPools()
	if err != nil {
		return nil, fmt.Errorf("failed to build reference pools: %w", err)
	}

	pop, err := g.GeneratePopulation(pools)
	if err != nil {
		return nil, fmt.Errorf("failed to generate persons: %w", err)
	}

	ds, err := g.Derive(pools, pop)
	if err != nil {
		return nil, err
	}

	g.log.Info("dataset generated",
		zap.String("run_id", ds.RunID.String()),
		zap.Int("persons", len(ds.Persons)),
		zap.Int("marriages", len(ds.Marriages)),
		zap.Int("deaths", len(ds.Deaths)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return ds, nil
}

// Derive produces marriages, witnesses and deaths over an existing population.
func (g *Generator) Derive(pools *Pools, pop *Population) (*Dataset, error) {
	marriages, witnesses, err := g.deriveMarriages(pools, pop)
	if err != nil {
		return nil, fmt.Errorf("failed to derive marriages: %w", err)
	}

	deaths, err := g.deriveDeaths(pools, pop)
	if err != nil {
		return nil, fmt.Errorf("failed to derive deaths: %w", err)
	}

	return &Dataset{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Pools:       pools,
		Population:  pop,
		Marriages:   marriages,
		Witnesses:   witnesses,
		Deaths:      deaths,
	}, nil
}

func (g *Generator) exhausted(pool string, produced, requested int) {
	g.log.Warn(ErrPoolExhausted.Error(),
		zap.String("pool", pool),
		zap.Int("produced", produced),
		zap.Int("requested", requested),
	)
}
