package domain

import "errors"

// ErrorKind classifies failures surfaced to callers
type ErrorKind string

const (
	KindMissingParameter ErrorKind = "missing_parameter"
	KindUpstreamFailure  ErrorKind = "upstream_failure"
)

// MissingParameterMessage is returned verbatim when a required query parameter is absent
const MissingParameterMessage = "Please provide job_title, city, and country"

// Error carries a kind alongside the underlying failure
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrMissingParameter is the validation failure for an incomplete search
var ErrMissingParameter = &Error{
	Kind: KindMissingParameter,
	Err:  errors.New(MissingParameterMessage),
}

// Upstream marks err as a failure of the scraping collaborator
func Upstream(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindUpstreamFailure, Err: err}
}

// KindOf reports the kind of err, or "" when err is unclassified
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
