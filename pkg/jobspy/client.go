package jobspy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

const (
	defaultBaseURL = "http://localhost:8000"
	searchPath     = "/api/v1/search_jobs"
	apiKeyHeader   = "x-api-key"
	maxErrorBody   = 4096
)

// NewClient instantiates a JobSpy API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("jobspy: invalid base url %q: %w", cfg.BaseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// SearchJobs runs one scrape and returns the rows in upstream order
func (c *Client) SearchJobs(ctx context.Context, params SearchParams) ([]Record, error) {
	if c == nil {
		return nil, fmt.Errorf("jobspy: client is nil")
	}

	u, err := c.buildSearchURL(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("jobspy: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jobspy: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("jobspy: API error (%d): %s", resp.StatusCode, errorDetail(body))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("jobspy: decode response: %w", err)
	}

	records := make([]Record, 0, len(payload.Jobs))
	for i, raw := range payload.Jobs {
		rec, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("jobspy: decode job %d: %w", i, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (c *Client) buildSearchURL(params SearchParams) (string, error) {
	if params.SearchTerm == "" {
		return "", fmt.Errorf("jobspy: search term is required")
	}
	if len(params.SiteNames) == 0 {
		return "", fmt.Errorf("jobspy: at least one site name is required")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("jobspy: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, searchPath)

	values := url.Values{}
	for _, site := range params.SiteNames {
		values.Add("site_name", site)
	}
	values.Set("search_term", params.SearchTerm)

	if params.Location != "" {
		values.Set("location", params.Location)
	}
	if params.ResultsWanted > 0 {
		values.Set("results_wanted", strconv.Itoa(params.ResultsWanted))
	}
	if params.CountryIndeed != "" {
		values.Set("country_indeed", params.CountryIndeed)
	}
	if params.LinkedInFetchDescription {
		values.Set("linkedin_fetch_description", "true")
	}
	if params.HoursOld != nil {
		values.Set("hours_old", strconv.Itoa(*params.HoursOld))
	}

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func decodeRecord(raw json.RawMessage) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = Record{}
	}

	return rec, nil
}

// errorDetail extracts the FastAPI "detail" message, falling back to the raw body
func errorDetail(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil {
		switch d := e.Detail.(type) {
		case string:
			if d != "" {
				return d
			}
		case nil:
		default:
			if b, err := json.Marshal(d); err == nil {
				return string(b)
			}
		}
		if e.Error != "" {
			return e.Error
		}
	}

	return strings.TrimSpace(string(body))
}
