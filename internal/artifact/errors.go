package artifact

import "errors"

var (
	ErrInvalidPath = errors.New("invalid artifact path")
	ErrNotFound    = errors.New("artifact not found")
)
