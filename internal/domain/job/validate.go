package job

import (
	"github.com/honeycarbs/jobspy-proxy/internal/domain"
)

// Validate checks that every search parameter is present and composes the location.
// Values are taken as given: only empty strings are rejected.
func Validate(q domain.SearchQuery) (domain.SearchRequest, error) {
	if q.JobTitle == "" || q.City == "" || q.Country == "" {
		return domain.SearchRequest{}, domain.ErrMissingParameter
	}

	return domain.SearchRequest{
		JobTitle: q.JobTitle,
		City:     q.City,
		Country:  q.Country,
		Location: q.City + ", " + q.Country,
	}, nil
}
