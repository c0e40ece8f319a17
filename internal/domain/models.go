package domain

import (
	"fmt"
	"strings"
)

// Source identifies the job board a scrape targets
type Source string

const (
	SourceLinkedIn Source = "linkedin"
	SourceIndeed   Source = "indeed"
)

// Sources lists every supported job board in route order
func Sources() []Source {
	return []Source{SourceLinkedIn, SourceIndeed}
}

// ParseSource resolves a case-insensitive source name
func ParseSource(s string) (Source, error) {
	src := Source(strings.ToLower(strings.TrimSpace(s)))
	switch src {
	case SourceLinkedIn, SourceIndeed:
		return src, nil
	default:
		return "", fmt.Errorf("unknown source %q", s)
	}
}

// SearchQuery holds raw, unvalidated search parameters
type SearchQuery struct {
	JobTitle string `form:"job_title" json:"job_title"`
	City     string `form:"city" json:"city"`
	Country  string `form:"country" json:"country"`
}

// SearchRequest is a validated search with the composed location
type SearchRequest struct {
	JobTitle string
	City     string
	Country  string
	Location string // "{city}, {country}"
}

// ScrapeParams are the arguments passed to the scraping collaborator
type ScrapeParams struct {
	Sites                    []string
	SearchTerm               string
	Location                 string
	ResultsWanted            int
	CountryIndeed            string
	LinkedInFetchDescription bool
	HoursOld                 *int // nil means no time window
}

// Row is one record of the collaborator's tabular result, keyed by column name
type Row map[string]any

// Table is the ordered tabular result of one scrape
type Table []Row

// JobRecord is the JSON-safe job listing returned to callers.
// A nil field marshals as null.
type JobRecord struct {
	JobURL       *string `json:"job_url"`
	Title        *string `json:"title"`
	Company      *string `json:"company"`
	Location     *string `json:"location"`
	DatePosted   *string `json:"date_posted"`
	JobType      *string `json:"job_type"`
	JobURLDirect *string `json:"job_url_direct"`
	CompanyLogo  *string `json:"company_logo"`
}

// ScrapeResult wraps the normalized records of one scrape
type ScrapeResult struct {
	Jobs  []JobRecord `json:"result"`
	Count int         `json:"scraped-jobs"`
}
