package retrieval

import (
	"context"

	"soroia/internal/model"
)

// Retriever returns the passages most relevant to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]model.Passage, error)
}

// Indexer pushes the corpus into a persistent vector collection.
type Indexer interface {
	Index(ctx context.Context) (IndexStats, error)
}
