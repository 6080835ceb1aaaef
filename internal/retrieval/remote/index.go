package remote

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"soroia/internal/retrieval"
	pkgQdrant "soroia/pkg/qdrant"
	"soroia/pkg/voyage"
)

// Index loads and splits the corpus and upserts every chunk, creating the
// collection first when it does not exist. Point ids derive from source and
// chunk position, so re-indexing overwrites instead of duplicating.
func (ix *implIndexer) Index(ctx context.Context) (retrieval.IndexStats, error) {
	var stats retrieval.IndexStats

	docs, err := retrieval.LoadCorpus(ctx, ix.fs, ix.opt.CorpusURL)
	if err != nil {
		return stats, err
	}
	chunks := retrieval.NewSplitter(ix.opt.ChunkSize, ix.opt.ChunkOverlap).SplitDocuments(docs)
	stats.Documents = len(docs)

	exists, err := ix.client.CollectionExists(ctx, ix.opt.Collection)
	if err != nil {
		ix.l.Errorf(ctx, "%s: check collection: %v", LogPrefixIndex, err)
		return stats, err
	}
	if !exists {
		err := ix.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
			Name:    ix.opt.Collection,
			Vectors: pkgQdrant.VectorConfig{Size: ix.opt.VectorSize, Distance: distanceCosine},
		})
		if err != nil {
			ix.l.Errorf(ctx, "%s: create collection: %v", LogPrefixIndex, err)
			return stats, err
		}
		stats.Created = true
		ix.l.Infof(ctx, "%s: created collection %s", LogPrefixIndex, ix.opt.Collection)
	}

	for start := 0; start < len(chunks); start += ix.opt.BatchSize {
		batch := chunks[start:min(start+ix.opt.BatchSize, len(chunks))]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Text
		}
		vectors, err := ix.embedder.Embed(ctx, texts, voyage.InputTypeDocument)
		if err != nil {
			return stats, fmt.Errorf("%w: %v", retrieval.ErrEmbedding, err)
		}

		points := make([]pkgQdrant.Point, len(batch))
		for i, c := range batch {
			points[i] = pkgQdrant.Point{
				ID:     PointID(c),
				Vector: vectors[i],
				Payload: map[string]interface{}{
					retrieval.PayloadText:      c.Text,
					retrieval.PayloadSource:    c.Source,
					retrieval.PayloadChunk:     c.Index,
					retrieval.PayloadNamespace: ix.opt.Namespace,
				},
			}
		}
		if err := ix.client.UpsertPoints(ctx, ix.opt.Collection, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
			ix.l.Errorf(ctx, "%s: upsert: %v", LogPrefixIndex, err)
			return stats, err
		}
		stats.Chunks += len(batch)
	}

	ix.l.Infof(ctx, "%s: upserted %d chunk(s) from %d document(s)", LogPrefixIndex, stats.Chunks, stats.Documents)
	return stats, nil
}

// pointNamespace seeds deterministic point ids (UUID v5).
var pointNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// PointID is the deterministic Qdrant id of a chunk.
func PointID(c retrieval.Chunk) string {
	return uuid.NewSHA1(pointNamespace, []byte(c.Source+"#"+strconv.Itoa(c.Index))).String()
}
