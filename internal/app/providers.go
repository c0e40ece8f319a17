package app

import (
	"github.com/google/wire"

	"github.com/honeycarbs/jobspy-proxy/internal/config"
	"github.com/honeycarbs/jobspy-proxy/internal/domain"
	"github.com/honeycarbs/jobspy-proxy/internal/domain/job"
	jobspyScraper "github.com/honeycarbs/jobspy-proxy/internal/domain/job/scrapers/jobspy"
	"github.com/honeycarbs/jobspy-proxy/internal/httpapi"
	"github.com/honeycarbs/jobspy-proxy/internal/mcp"
	"github.com/honeycarbs/jobspy-proxy/pkg/jobspy"
)

// ServiceSet builds the scrape service from config
var ServiceSet = wire.NewSet(
	provideJobSpyConfig,
	jobspy.NewClient,
	provideScraper,
	provideProfiles,
	job.NewServiceWithDeps,
)

// ServerSet builds the HTTP server on top of ServiceSet
var ServerSet = wire.NewSet(
	ServiceSet,
	httpapi.NewScrapeHandler,
	mcp.NewHandler,
	httpapi.NewServer,
)

// provideJobSpyConfig extracts JobSpy client config from main config
func provideJobSpyConfig(cfg config.Config) jobspy.Config {
	return jobspy.Config{
		BaseURL: cfg.JobSpy.BaseURL,
		APIKey:  cfg.JobSpy.APIKey,
		Timeout: cfg.JobSpy.Timeout,
	}
}

// provideScraper creates the JobSpy scraper from client
func provideScraper(client *jobspy.Client) (job.Scraper, error) {
	return jobspyScraper.NewScraper(client)
}

// provideProfiles applies per-source overrides to the default profiles
func provideProfiles(cfg config.Config) job.Profiles {
	profiles := job.DefaultProfiles()

	for name, override := range cfg.Sources {
		source, err := domain.ParseSource(name)
		if err != nil {
			continue
		}

		prof := profiles[source]
		if override.ResultsWanted > 0 {
			prof.ResultsWanted = override.ResultsWanted
		}
		profiles[source] = prof
	}

	return profiles
}
