package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrExecutionFailed = errors.New("query execution failed")
	ErrRecordNotFound  = errors.New("record not found")
	ErrEmptyInventory  = errors.New("inventory is required")
)

// ExecutionError reports a query the store rejected. Reason is the store's message.
type ExecutionError struct {
	Reason string
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrExecutionFailed, e.Reason)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func (e *ExecutionError) Is(target error) bool {
	return target == ErrExecutionFailed
}
