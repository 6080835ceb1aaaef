package query

import "errors"

var (
	// ErrInvalidQuery wraps every validation failure. Such a query is never executed.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrGenerationFailed indicates the gateway could not produce a query.
	ErrGenerationFailed = errors.New("query generation failed")
)
