package local

import (
	"sync"

	"github.com/viant/afs"

	"soroia/internal/retrieval"
	"soroia/pkg/log"
	"soroia/pkg/voyage"
)

// Options configures the in-memory index.
type Options struct {
	CorpusURL    string
	ChunkSize    int
	ChunkOverlap int
	TopK         int
	BatchSize    int
	Concurrency  int
}

type implRetriever struct {
	fs       afs.Service
	embedder voyage.IVoyage
	l        log.Logger
	opt      Options

	mu    sync.Mutex
	index *index
}

var _ retrieval.Retriever = (*implRetriever)(nil)

// New creates a retriever over an in-memory index of the corpus at
// opt.CorpusURL. The index is built on first use.
func New(fs afs.Service, embedder voyage.IVoyage, l log.Logger, opt Options) *implRetriever {
	if opt.TopK <= 0 {
		opt.TopK = DefaultTopK
	}
	if opt.BatchSize <= 0 {
		opt.BatchSize = DefaultBatchSize
	}
	if opt.Concurrency <= 0 {
		opt.Concurrency = DefaultConcurrency
	}
	return &implRetriever{
		fs:       fs,
		embedder: embedder,
		l:        l,
		opt:      opt,
	}
}
