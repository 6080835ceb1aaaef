package local

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/floats"

	"soroia/internal/retrieval"
	"soroia/pkg/voyage"
)

// index is immutable once built.
type index struct {
	chunks  []retrieval.Chunk
	vectors [][]float64
	norms   []float64
}

// ensureIndex builds the index once. A failed build is retried on the next call.
func (r *implRetriever) ensureIndex(ctx context.Context) (*index, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index != nil {
		return r.index, nil
	}
	idx, err := r.build(ctx)
	if err != nil {
		return nil, err
	}
	r.index = idx
	return idx, nil
}

func (r *implRetriever) build(ctx context.Context) (*index, error) {
	docs, err := retrieval.LoadCorpus(ctx, r.fs, r.opt.CorpusURL)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", LogPrefixBuild, err)
		return nil, err
	}

	chunks := retrieval.NewSplitter(r.opt.ChunkSize, r.opt.ChunkOverlap).SplitDocuments(docs)
	vectors, err := r.embedChunks(ctx, chunks)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", LogPrefixBuild, err)
		return nil, err
	}

	idx := &index{
		chunks:  chunks,
		vectors: vectors,
		norms:   make([]float64, len(vectors)),
	}
	for i, v := range vectors {
		idx.norms[i] = floats.Norm(v, 2)
	}

	r.l.Infof(ctx, "%s: indexed %d chunk(s) from %d document(s)", LogPrefixBuild, len(chunks), len(docs))
	return idx, nil
}

// embedChunks embeds chunks in batches, at most opt.Concurrency in flight.
func (r *implRetriever) embedChunks(ctx context.Context, chunks []retrieval.Chunk) ([][]float64, error) {
	vectors := make([][]float64, len(chunks))

	p := pool.New().WithContext(ctx).WithMaxGoroutines(r.opt.Concurrency).WithCancelOnError().WithFirstError()
	for start := 0; start < len(chunks); start += r.opt.BatchSize {
		end := min(start+r.opt.BatchSize, len(chunks))
		p.Go(func(ctx context.Context) error {
			texts := make([]string, end-start)
			for i := range texts {
				texts[i] = chunks[start+i].Text
			}
			embs, err := r.embedder.Embed(ctx, texts, voyage.InputTypeDocument)
			if err != nil {
				return fmt.Errorf("%w: chunks %d-%d: %v", retrieval.ErrEmbedding, start, end, err)
			}
			for i, e := range embs {
				vectors[start+i] = toFloat64(e)
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
