package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
	"github.com/honeycarbs/jobspy-proxy/internal/domain/job"
	"github.com/honeycarbs/jobspy-proxy/pkg/logging"
)

const toolScrapeJobs = "scrape_jobs"

// ScrapeJobsParams defines the arguments for the scrape_jobs tool
type ScrapeJobsParams struct {
	Source   string `json:"source" jsonschema:"Job board to scrape: linkedin or indeed"`
	JobTitle string `json:"job_title" jsonschema:"Job title or search term"`
	City     string `json:"city" jsonschema:"City to search in"`
	Country  string `json:"country" jsonschema:"Country of the city; also selects the Indeed domain"`
}

type scrapeJobsTool struct {
	service job.Service
	logger  *logging.Logger
}

// registerTools wires every tool into the MCP server
func registerTools(s *sdkmcp.Server, svc job.Service, logger *logging.Logger) {
	t := &scrapeJobsTool{service: svc, logger: logger}

	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        toolScrapeJobs,
		Description: "Scrape LinkedIn or Indeed listings for a job title in a city and return normalized records",
	}, t.handle)
}

func (t *scrapeJobsTool) handle(
	ctx context.Context,
	_ *sdkmcp.CallToolRequest,
	params ScrapeJobsParams,
) (*sdkmcp.CallToolResult, any, error) {
	source, err := domain.ParseSource(params.Source)
	if err != nil {
		return errorResult(err), nil, nil
	}

	req, err := job.Validate(domain.SearchQuery{
		JobTitle: params.JobTitle,
		City:     params.City,
		Country:  params.Country,
	})
	if err != nil {
		return errorResult(err), nil, nil
	}

	result, err := t.service.Scrape(ctx, source, req)
	if err != nil {
		t.logger.Warn("scrape_jobs tool failed", "source", string(source), "err", err)
		return errorResult(err), nil, nil
	}

	body, err := json.Marshal(result)
	if err != nil {
		return nil, nil, fmt.Errorf("scrape_jobs: encode result: %w", err)
	}

	return textResult(string(body)), nil, nil
}

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

func errorResult(err error) *sdkmcp.CallToolResult {
	res := textResult(err.Error())
	res.IsError = true
	return res
}
