package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobspy-proxy/internal/config"
	"github.com/honeycarbs/jobspy-proxy/internal/domain"
	"github.com/honeycarbs/jobspy-proxy/internal/domain/job"
	"github.com/honeycarbs/jobspy-proxy/pkg/logging"
)

type fakeScraper struct {
	calls []domain.ScrapeParams
	table domain.Table
	err   error
}

func (f *fakeScraper) Name() string { return "fake" }

func (f *fakeScraper) Scrape(_ context.Context, params domain.ScrapeParams) (domain.Table, error) {
	f.calls = append(f.calls, params)
	return f.table, f.err
}

func newTool(t *testing.T, scraper *fakeScraper) *scrapeJobsTool {
	t.Helper()
	svc, err := job.NewService(job.WithScraper(scraper))
	require.NoError(t, err)
	return &scrapeJobsTool{service: svc, logger: logging.NewNop()}
}

func resultText(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text
}

func TestScrapeJobsTool_Success(t *testing.T) {
	scraper := &fakeScraper{table: domain.Table{
		{"job_url": "https://www.linkedin.com/jobs/view/1", "title": "Go Developer"},
	}}
	tool := newTool(t, scraper)

	res, out, err := tool.handle(context.Background(), nil, ScrapeJobsParams{
		Source:   "LinkedIn",
		JobTitle: "developer",
		City:     "Berlin",
		Country:  "Germany",
	})
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.False(t, res.IsError)

	var body domain.ScrapeResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/1", *body.Jobs[0].JobURLDirect)

	require.Len(t, scraper.calls, 1)
	assert.Equal(t, []string{"linkedin"}, scraper.calls[0].Sites)
}

func TestScrapeJobsTool_Errors(t *testing.T) {
	tests := []struct {
		name    string
		params  ScrapeJobsParams
		err     error
		wantMsg string
	}{
		{
			name:    "unknown source",
			params:  ScrapeJobsParams{Source: "monster", JobTitle: "developer", City: "Berlin", Country: "Germany"},
			wantMsg: `unknown source "monster"`,
		},
		{
			name:    "missing parameter",
			params:  ScrapeJobsParams{Source: "indeed", JobTitle: "developer", City: "Berlin"},
			wantMsg: domain.MissingParameterMessage,
		},
		{
			name:    "upstream failure",
			params:  ScrapeJobsParams{Source: "indeed", JobTitle: "developer", City: "Berlin", Country: "Germany"},
			err:     errors.New("jobspy: request failed: connection refused"),
			wantMsg: "jobspy: request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := newTool(t, &fakeScraper{err: tt.err})

			res, _, err := tool.handle(context.Background(), nil, tt.params)
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Equal(t, tt.wantMsg, resultText(t, res))
		})
	}
}

func TestServer_InMemorySession(t *testing.T) {
	ctx := context.Background()

	svc, err := job.NewService(job.WithScraper(&fakeScraper{table: domain.Table{{"title": "SRE"}}}))
	require.NoError(t, err)
	server := NewServer(svc, logging.NewNop())

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer func() { _ = serverSession.Close() }()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.1.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name: toolScrapeJobs,
		Arguments: map[string]any{
			"source":    "indeed",
			"job_title": "developer",
			"city":      "Berlin",
			"country":   "Germany",
		},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{
		"result": [{
			"job_url": null, "title": "SRE", "company": null, "location": null,
			"date_posted": null, "job_type": null, "job_url_direct": null, "company_logo": null
		}],
		"scraped-jobs": 1
	}`, resultText(t, res))
}

func TestNewHandler_Disabled(t *testing.T) {
	svc, err := job.NewService(job.WithScraper(&fakeScraper{}))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Server.MCPEnabled = false
	assert.Nil(t, NewHandler(cfg, svc, logging.NewNop()))

	cfg.Server.MCPEnabled = true
	assert.NotNil(t, NewHandler(cfg, svc, logging.NewNop()))
}
