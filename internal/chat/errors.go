package chat

import "errors"

var (
	ErrEmptyMessage         = errors.New("message is required")
	ErrArtifactNotInSession = errors.New("artifact was not shown in this session")
)
