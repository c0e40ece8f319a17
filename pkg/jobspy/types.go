package jobspy

import (
	"encoding/json"
	"net/http"
	"time"
)

// Config defines JobSpy API client settings
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration // 0 disables the client-side timeout
	HTTPClient *http.Client
}

// Client queries a JobSpy API deployment
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// SearchParams mirror the query parameters of /api/v1/search_jobs
type SearchParams struct {
	SiteNames                []string
	SearchTerm               string
	Location                 string
	ResultsWanted            int
	CountryIndeed            string
	LinkedInFetchDescription bool
	HoursOld                 *int
}

// Record is one job row as returned by the API. Values are kept untyped;
// numbers decode as json.Number.
type Record map[string]any

type searchResponse struct {
	Count  int               `json:"count"`
	Jobs   []json.RawMessage `json:"jobs"`
	Cached bool              `json:"cached"`
}

type errorResponse struct {
	Detail any    `json:"detail"`
	Error  string `json:"error"`
}
