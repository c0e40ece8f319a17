package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	searchSource = string(domain.SourceIndeed)
	searchQuery = domain.SearchQuery{}
	cfgPath = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSearch_MissingParameter(t *testing.T) {
	_, err := runCLI(t, "search", "--source", "linkedin", "--job-title", "developer", "--city", "Berlin")
	require.Error(t, err)
	assert.EqualError(t, err, domain.MissingParameterMessage)
}

func TestSearch_UnknownSource(t *testing.T) {
	_, err := runCLI(t, "search", "--source", "monster", "--job-title", "developer", "--city", "Berlin", "--country", "Germany")
	assert.EqualError(t, err, `unknown source "monster"`)
}

func TestSearch_PrintsEnvelope(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count": 1, "jobs": [{"job_url": "https://de.indeed.com/viewjob?jk=1&from=serp", "title": "Go Developer"}]}`))
	}))
	defer upstream.Close()

	t.Setenv("JOBSPY_PROXY_CONFIG", "")
	t.Setenv("JOBSPY_BASE_URL", upstream.URL)
	t.Setenv("LOG_LEVEL", "error")

	out, err := runCLI(t, "search", "--job-title", "developer", "--city", "Berlin", "--country", "Germany")
	require.NoError(t, err)
	assert.Contains(t, out, `"scraped-jobs": 1`)
	assert.Contains(t, out, `"job_url_direct": "https://de.indeed.com/viewjob?jk=1&from=serp"`)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "jobspy-proxy dev\n", out)
}
