package job

import (
	"fmt"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
)

const (
	defaultLinkedInResults = 20
	defaultIndeedResults   = 30
)

// Profile holds the source-specific scrape arguments
type Profile struct {
	Sites            []string
	ResultsWanted    int
	FetchDescription bool
	HoursOld         *int
}

// Profiles maps each source to its scrape arguments
type Profiles map[domain.Source]Profile

// DefaultProfiles returns the stock arguments for every source
func DefaultProfiles() Profiles {
	return Profiles{
		domain.SourceLinkedIn: {
			Sites:            []string{string(domain.SourceLinkedIn)},
			ResultsWanted:    defaultLinkedInResults,
			FetchDescription: true,
		},
		domain.SourceIndeed: {
			Sites:         []string{string(domain.SourceIndeed)},
			ResultsWanted: defaultIndeedResults,
		},
	}
}

// Params builds collaborator arguments for req against source
func (p Profiles) Params(source domain.Source, req domain.SearchRequest) (domain.ScrapeParams, error) {
	prof, ok := p[source]
	if !ok {
		return domain.ScrapeParams{}, fmt.Errorf("no profile for source %q", source)
	}

	sites := make([]string, len(prof.Sites))
	copy(sites, prof.Sites)

	return domain.ScrapeParams{
		Sites:                    sites,
		SearchTerm:               req.JobTitle,
		Location:                 req.Location,
		ResultsWanted:            prof.ResultsWanted,
		CountryIndeed:            req.Country,
		LinkedInFetchDescription: prof.FetchDescription,
		HoursOld:                 prof.HoursOld,
	}, nil
}
