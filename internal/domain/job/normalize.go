package job

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
)

// Markers the tabular source uses for "no value" in string columns
var missingMarkers = map[string]struct{}{
	"NaN":  {},
	"nan":  {},
	"NaT":  {},
	"None": {},
	"<NA>": {},
	"null": {},
}

// epoch values at or above this are taken as milliseconds
const epochMillisThreshold = 1e11

const (
	dateLayout      = "2006-01-02"
	naiveTimeLayout = "2006-01-02T15:04:05"
)

// Assemble normalizes every row of table, preserving order
func Assemble(table domain.Table) domain.ScrapeResult {
	jobs := make([]domain.JobRecord, 0, len(table))
	for _, row := range table {
		jobs = append(jobs, DecodeRecord(row))
	}

	return domain.ScrapeResult{
		Jobs:  jobs,
		Count: len(jobs),
	}
}

// DecodeRecord converts one tabular row into a JSON-safe record.
// It is the only place missing-value markers are recognised.
func DecodeRecord(row domain.Row) domain.JobRecord {
	jobURL := optionalText(row["job_url"])

	direct := optionalText(row["job_url_direct"])
	if direct == nil {
		direct = jobURL
	}

	return domain.JobRecord{
		JobURL:       jobURL,
		Title:        optionalText(row["title"]),
		Company:      optionalText(row["company"]),
		Location:     optionalText(row["location"]),
		DatePosted:   optionalDate(row["date_posted"]),
		JobType:      optionalText(row["job_type"]),
		JobURLDirect: direct,
		CompanyLogo:  optionalText(row["company_logo"]),
	}
}

func isMissing(s string) bool {
	_, ok := missingMarkers[s]
	return ok
}

func optionalText(v any) *string {
	var s string

	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if isMissing(t) {
			return nil
		}
		s = t
	case json.Number:
		if isMissing(t.String()) {
			return nil
		}
		s = t.String()
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case bool:
		s = strconv.FormatBool(t)
	case time.Time:
		if t.IsZero() {
			return nil
		}
		s = t.Format(time.RFC3339)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if p := optionalText(item); p != nil {
				parts = append(parts, *p)
			}
		}
		if len(parts) == 0 {
			return nil
		}
		s = strings.Join(parts, ", ")
	default:
		s = fmt.Sprint(t)
	}

	return &s
}

func optionalDate(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		if t.IsZero() {
			return nil
		}
		s := t.Format(time.RFC3339)
		return &s
	case string:
		return parseDateString(strings.TrimSpace(t))
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return fromEpoch(f)
		}
		return parseDateString(t.String())
	case float64:
		return fromEpoch(t)
	case int64:
		return fromEpoch(float64(t))
	case int:
		return fromEpoch(float64(t))
	default:
		return nil
	}
}

func parseDateString(s string) *string {
	if s == "" || isMissing(s) {
		return nil
	}

	var out string
	if ts, err := time.Parse(dateLayout, s); err == nil {
		out = ts.Format(dateLayout)
	} else if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		out = ts.Format(time.RFC3339)
	} else if ts, err := time.Parse(naiveTimeLayout, s); err == nil {
		out = ts.Format(naiveTimeLayout)
	} else if ts, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		out = ts.Format(naiveTimeLayout)
	} else {
		return nil
	}

	return &out
}

func fromEpoch(f float64) *string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	var ts time.Time
	if math.Abs(f) >= epochMillisThreshold {
		ts = time.UnixMilli(int64(f))
	} else {
		ts = time.Unix(int64(f), 0)
	}

	s := ts.UTC().Format(time.RFC3339)
	return &s
}
