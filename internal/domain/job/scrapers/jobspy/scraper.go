package jobspy

import (
	"context"
	"fmt"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
	jobdomain "github.com/honeycarbs/jobspy-proxy/internal/domain/job"
	"github.com/honeycarbs/jobspy-proxy/pkg/jobspy"
)

// searchClient describes the subset of the JobSpy client used by the scraper.
type searchClient interface {
	SearchJobs(ctx context.Context, params jobspy.SearchParams) ([]jobspy.Record, error)
}

// Scraper implements job.Scraper using the JobSpy API
type Scraper struct {
	client searchClient
}

// NewScraper builds a JobSpy scraper
func NewScraper(client searchClient) (*Scraper, error) {
	if client == nil {
		return nil, fmt.Errorf("jobspy scraper: client is required")
	}
	return &Scraper{client: client}, nil
}

// Name returns scraper identifier
func (s *Scraper) Name() string {
	return "jobspy"
}

// Scrape queries JobSpy and returns its rows as a domain table
func (s *Scraper) Scrape(ctx context.Context, params domain.ScrapeParams) (domain.Table, error) {
	if s == nil || s.client == nil {
		return nil, fmt.Errorf("jobspy scraper: client is nil")
	}

	records, err := s.client.SearchJobs(ctx, jobspy.SearchParams{
		SiteNames:                params.Sites,
		SearchTerm:               params.SearchTerm,
		Location:                 params.Location,
		ResultsWanted:            params.ResultsWanted,
		CountryIndeed:            params.CountryIndeed,
		LinkedInFetchDescription: params.LinkedInFetchDescription,
		HoursOld:                 params.HoursOld,
	})
	if err != nil {
		return nil, err
	}

	table := make(domain.Table, 0, len(records))
	for _, rec := range records {
		table = append(table, domain.Row(rec))
	}

	return table, nil
}

var _ jobdomain.Scraper = (*Scraper)(nil)
