package assistant

import "errors"

var (
	ErrEmptyUtterance = errors.New("utterance is required")
)
