package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:5000/mcp", "MCP streamable HTTP endpoint")
	source := flag.String("source", "indeed", "job board: linkedin or indeed")
	jobTitle := flag.String("job-title", "developer", "job title to search for")
	city := flag.String("city", "Berlin", "city to search in")
	country := flag.String("country", "Germany", "country of the city")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobspy-proxy-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testScrapeJobs(ctx, session, map[string]any{
		"source":    *source,
		"job_title": *jobTitle,
		"city":      *city,
		"country":   *country,
	})
	testMissingParameter(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: tools/list")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("list tools failed: %v", err)
	}

	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
}

func testScrapeJobs(ctx context.Context, session *mcp.ClientSession, args map[string]any) {
	fmt.Println("\nTEST: scrape_jobs")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "scrape_jobs",
		Arguments: args,
	})
	if err != nil {
		log.Printf("scrape_jobs failed: %v", err)
		return
	}

	printResult(result)
	if result.IsError {
		fmt.Println("scrape_jobs returned a tool error")
		return
	}
	fmt.Println("scrape_jobs passed")
}

func testMissingParameter(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: scrape_jobs without country")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "scrape_jobs",
		Arguments: map[string]any{
			"source":    "linkedin",
			"job_title": "developer",
			"city":      "Berlin",
			"country":   "",
		},
	})
	if err != nil {
		log.Printf("scrape_jobs failed: %v", err)
		return
	}

	printResult(result)
	if !result.IsError {
		log.Printf("expected a tool error for an empty country")
		return
	}
	fmt.Println("missing parameter check passed")
}

func printResult(result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Println(text.Text)
		}
	}
}
