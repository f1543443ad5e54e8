package main

import (
	"log/slog"
	"strings"
	"sync"

	"mediashelf/internal/aggregate"
	"mediashelf/internal/cachestore"
	"mediashelf/internal/catalog/store"
	"mediashelf/internal/config"
	"mediashelf/internal/logging"
	"mediashelf/internal/lookup"
	"mediashelf/internal/services/barcode"
	"mediashelf/internal/services/openlibrary"
	"mediashelf/internal/services/tmdb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.log = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.log = logging.NewNop()
			return
		}
		c.log = logger
	})
	return c.log
}

func (c *commandContext) openStore() (*store.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return store.Open(cfg)
}

func (c *commandContext) newAggregator(lister aggregate.Lister) (*aggregate.Aggregator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	cache := cachestore.New(cfg.Cache.Path, c.logger())
	return aggregate.New(lister, cache, cfg.MetadataTTL(), cfg.StatsTTL(), c.logger()), nil
}

// newDispatcher wires the lookup strategies from configured clients. Movie
// lookups need a TMDB key; without one the movie strategy is left out and
// movie lookups resolve as not found.
func (c *commandContext) newDispatcher() (*lookup.Dispatcher, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger := c.logger()

	products, err := barcode.New(cfg.Barcode.BaseURL, cfg.Barcode.APIKey, barcode.WithTimeout(cfg.BarcodeTimeout()))
	if err != nil {
		return nil, err
	}
	editions, err := openlibrary.New(cfg.OpenLibrary.BaseURL)
	if err != nil {
		return nil, err
	}

	strategies := make([]lookup.Strategy, 0, 4)
	if strings.TrimSpace(cfg.TMDB.APIKey) != "" {
		metadata, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, lookup.NewMovieStrategy(products, metadata, logger))
	} else {
		logger.Warn("tmdb api key not configured; movie lookups disabled")
	}
	strategies = append(strategies,
		lookup.NewBookStrategy(editions, logger),
		lookup.NewGameStrategy(products, logger),
		lookup.NewMusicStrategy(products, logger),
	)

	return lookup.NewDispatcher(logger, strategies...), nil
}
