package job

import (
	"context"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
)

// Scraper represents the external job-scraping collaborator (JobSpy API, fakes in tests)
type Scraper interface {
	// e.g. "jobspy"
	Name() string

	// Scrape returns the raw tabular result for the given parameters
	Scrape(ctx context.Context, params domain.ScrapeParams) (domain.Table, error)
}
