package remote

import (
	"github.com/viant/afs"

	"soroia/internal/retrieval"
	"soroia/pkg/log"
	pkgQdrant "soroia/pkg/qdrant"
	"soroia/pkg/voyage"
)

// Options configures the Qdrant-backed retriever and indexer.
type Options struct {
	Collection string
	Namespace  string
	TopK       int
	VectorSize int

	// Indexing only.
	CorpusURL    string
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int
}

type implRetriever struct {
	client   *pkgQdrant.Client
	embedder voyage.IVoyage
	l        log.Logger
	opt      Options
}

var _ retrieval.Retriever = (*implRetriever)(nil)

// New creates a retriever that searches a Qdrant collection.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, l log.Logger, opt Options) *implRetriever {
	return &implRetriever{
		client:   client,
		embedder: embedder,
		l:        l,
		opt:      withDefaults(opt),
	}
}

type implIndexer struct {
	fs       afs.Service
	client   *pkgQdrant.Client
	embedder voyage.IVoyage
	l        log.Logger
	opt      Options
}

var _ retrieval.Indexer = (*implIndexer)(nil)

// NewIndexer creates an indexer that uploads the corpus at opt.CorpusURL.
func NewIndexer(fs afs.Service, client *pkgQdrant.Client, embedder voyage.IVoyage, l log.Logger, opt Options) *implIndexer {
	return &implIndexer{
		fs:       fs,
		client:   client,
		embedder: embedder,
		l:        l,
		opt:      withDefaults(opt),
	}
}

func withDefaults(opt Options) Options {
	if opt.Collection == "" {
		opt.Collection = DefaultCollection
	}
	if opt.Namespace == "" {
		opt.Namespace = DefaultNamespace
	}
	if opt.TopK <= 0 {
		opt.TopK = DefaultTopK
	}
	if opt.VectorSize <= 0 {
		opt.VectorSize = DefaultVectorSize
	}
	if opt.BatchSize <= 0 {
		opt.BatchSize = DefaultBatchSize
	}
	return opt
}
