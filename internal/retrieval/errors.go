package retrieval

import "errors"

var (
	ErrEmptyQuery      = errors.New("query is required")
	ErrEmptyCorpus     = errors.New("corpus has no documents")
	ErrRetrievalFailed = errors.New("retrieval failed")
	ErrEmbedding       = errors.New("failed to generate embedding")
)
