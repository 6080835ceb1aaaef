package repository

import (
	"errors"
	"fmt"
)

var (
	ErrFailedToQuery = errors.New("failed to query records")
	ErrFailedToGet   = errors.New("failed to get record")
)

// QueryError carries the driver error of a failed read.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%v: %v", ErrFailedToQuery, e.Err)
}

func (e *QueryError) Unwrap() []error {
	return []error{ErrFailedToQuery, e.Err}
}
