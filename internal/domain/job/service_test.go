package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
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

var berlin = domain.SearchRequest{
	JobTitle: "developer",
	City:     "Berlin",
	Country:  "Germany",
	Location: "Berlin, Germany",
}

func TestNewService_RequiresScraper(t *testing.T) {
	_, err := NewService()
	assert.EqualError(t, err, "job.Service: scraper is required")

	_, err = NewService(WithScraper(&fakeScraper{}), WithProfiles(Profiles{}))
	assert.EqualError(t, err, "job.Service: at least one source profile is required")
}

func TestService_ScrapeIndeed(t *testing.T) {
	scraper := &fakeScraper{table: domain.Table{
		{"job_url": "https://www.indeed.com/viewjob?jk=1", "company_logo": "https://logo/1.png"},
		{"job_url": "https://www.indeed.com/viewjob?jk=2", "company_logo": nil},
		{"job_url": "https://www.indeed.com/viewjob?jk=3", "company_logo": "https://logo/3.png"},
	}}
	svc, err := NewService(WithScraper(scraper))
	require.NoError(t, err)

	res, err := svc.Scrape(context.Background(), domain.SourceIndeed, berlin)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Count)
	require.Len(t, res.Jobs, 3)
	assert.Nil(t, res.Jobs[1].CompanyLogo)
	assert.Equal(t, "https://www.indeed.com/viewjob?jk=2", *res.Jobs[1].JobURLDirect)

	require.Len(t, scraper.calls, 1)
	assert.Equal(t, []string{"indeed"}, scraper.calls[0].Sites)
	assert.Equal(t, 30, scraper.calls[0].ResultsWanted)
	assert.Equal(t, "Berlin, Germany", scraper.calls[0].Location)
}

func TestService_ScrapeEmpty(t *testing.T) {
	svc, err := NewService(WithScraper(&fakeScraper{}))
	require.NoError(t, err)

	res, err := svc.Scrape(context.Background(), domain.SourceLinkedIn, berlin)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Jobs)
	assert.Empty(t, res.Jobs)
}

func TestService_ScrapeUpstreamFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	boom := errors.New("jobspy: API error (500): blocked")

	svc, err := NewService(
		WithScraper(&fakeScraper{err: boom}),
		WithLogger(logging.FromZap(zap.New(core))),
	)
	require.NoError(t, err)

	_, err = svc.Scrape(context.Background(), domain.SourceLinkedIn, berlin)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.KindUpstreamFailure, domain.KindOf(err))
	assert.Equal(t, boom.Error(), err.Error())

	warn := logs.FilterMessage("scrape failed").All()
	require.Len(t, warn, 1)
	assert.Equal(t, zapcore.WarnLevel, warn[0].Level)
	assert.Equal(t, "linkedin", warn[0].ContextMap()["source"])
}

func TestService_UnknownSourceSkipsScraper(t *testing.T) {
	scraper := &fakeScraper{}
	svc, err := NewService(WithScraper(scraper))
	require.NoError(t, err)

	_, err = svc.Scrape(context.Background(), domain.Source("glassdoor"), berlin)
	require.Error(t, err)
	assert.Empty(t, scraper.calls)
	assert.Equal(t, domain.ErrorKind(""), domain.KindOf(err))
}

func TestService_LogsDuration(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	ticks := []time.Time{
		time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 18, 12, 0, 3, 0, time.UTC),
	}
	clock := func() time.Time {
		now := ticks[0]
		ticks = ticks[1:]
		return now
	}

	svc, err := NewService(
		WithScraper(&fakeScraper{table: domain.Table{{"title": "Go Developer"}}}),
		WithLogger(logging.FromZap(zap.New(core))),
		WithClock(clock),
	)
	require.NoError(t, err)

	_, err = svc.Scrape(context.Background(), domain.SourceIndeed, berlin)
	require.NoError(t, err)

	done := logs.FilterMessage("scrape completed").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	assert.EqualValues(t, 1, fields["rows"])
	assert.Equal(t, 3*time.Second, fields["took"])
}
