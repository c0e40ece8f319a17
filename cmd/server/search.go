package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/jobspy-proxy/internal/app"
	"github.com/honeycarbs/jobspy-proxy/internal/domain"
	"github.com/honeycarbs/jobspy-proxy/internal/domain/job"
)

var (
	searchSource string
	searchQuery  domain.SearchQuery
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one scrape and print the JSON result",
	Long:  "One-shot scrape: runs the same validation and normalization as the HTTP endpoints and writes the envelope to stdout.",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchSource, "source", "s", string(domain.SourceIndeed), "job board: linkedin or indeed")
	searchCmd.Flags().StringVar(&searchQuery.JobTitle, "job-title", "", "job title to search for")
	searchCmd.Flags().StringVar(&searchQuery.City, "city", "", "city to search in")
	searchCmd.Flags().StringVar(&searchQuery.Country, "country", "", "country of the city")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	source, err := domain.ParseSource(searchSource)
	if err != nil {
		return err
	}

	req, err := job.Validate(searchQuery)
	if err != nil {
		return err
	}

	cfg, logger, err := setup()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	svc, err := app.InitializeService(cfg, logger)
	if err != nil {
		return err
	}

	result, err := svc.Scrape(cmd.Context(), source, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
