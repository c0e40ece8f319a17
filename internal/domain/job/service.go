package job

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
	"github.com/honeycarbs/jobspy-proxy/pkg/logging"
)

type Service interface {
	Scrape(ctx context.Context, source domain.Source, req domain.SearchRequest) (domain.ScrapeResult, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	scraper  Scraper
	profiles Profiles
	logger   *logging.Logger
	clock    func() time.Time
}

// WithScraper sets the scraping collaborator
func WithScraper(s Scraper) Option {
	return func(c *config) {
		c.scraper = s
	}
}

// WithProfiles replaces the per-source scrape arguments
func WithProfiles(p Profiles) Option {
	return func(c *config) {
		c.profiles = p
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		profiles: DefaultProfiles(),
		logger:   logging.NewNop(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.scraper == nil {
		return nil, fmt.Errorf("job.Service: scraper is required")
	}
	if len(cfg.profiles) == 0 {
		return nil, fmt.Errorf("job.Service: at least one source profile is required")
	}

	return &service{
		scraper:  cfg.scraper,
		profiles: cfg.profiles,
		logger:   cfg.logger,
		clock:    cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(scraper Scraper, profiles Profiles, logger *logging.Logger) (Service, error) {
	return NewService(
		WithScraper(scraper),
		WithProfiles(profiles),
		WithLogger(logger),
	)
}

type service struct {
	scraper  Scraper
	profiles Profiles
	logger   *logging.Logger
	clock    func() time.Time
}

// Scrape runs one scrape against source and normalizes the rows.
// Collaborator failures are returned as domain.KindUpstreamFailure without retry.
func (s *service) Scrape(
	ctx context.Context,
	source domain.Source,
	req domain.SearchRequest,
) (domain.ScrapeResult, error) {
	params, err := s.profiles.Params(source, req)
	if err != nil {
		return domain.ScrapeResult{}, err
	}

	log := s.logger.With(
		"source", string(source),
		"scraper", s.scraper.Name(),
		"search_term", params.SearchTerm,
		"location", params.Location,
	)

	start := s.clock()
	table, err := s.scraper.Scrape(ctx, params)
	took := s.clock().Sub(start)
	if err != nil {
		log.Warn("scrape failed", "err", err, "took", took)
		return domain.ScrapeResult{}, domain.Upstream(err)
	}

	result := Assemble(table)
	log.Info("scrape completed", "rows", result.Count, "took", took)

	return result, nil
}
