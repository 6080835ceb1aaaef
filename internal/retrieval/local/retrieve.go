package local

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"soroia/internal/model"
	"soroia/internal/retrieval"
	"soroia/pkg/voyage"
)

// Retrieve returns the TopK chunks by cosine similarity. Ties keep corpus
// order, so the same query always yields the same passages.
func (r *implRetriever) Retrieve(ctx context.Context, query string) ([]model.Passage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, retrieval.ErrEmptyQuery
	}

	idx, err := r.ensureIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", retrieval.ErrRetrievalFailed, err)
	}

	embs, err := r.embedder.Embed(ctx, []string{query}, voyage.InputTypeQuery)
	if err != nil || len(embs) == 0 {
		r.l.Errorf(ctx, "%s: embed query: %v", LogPrefixRetrieve, err)
		return nil, fmt.Errorf("%w: %v", retrieval.ErrEmbedding, err)
	}
	q := toFloat64(embs[0])
	qNorm := floats.Norm(q, 2)

	scores := make([]float64, len(idx.chunks))
	order := make([]int, len(idx.chunks))
	for i, v := range idx.vectors {
		order[i] = i
		if len(v) != len(q) || qNorm == 0 || idx.norms[i] == 0 {
			continue
		}
		scores[i] = floats.Dot(q, v) / (qNorm * idx.norms[i])
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	k := min(r.opt.TopK, len(order))
	passages := make([]model.Passage, k)
	for i := 0; i < k; i++ {
		c := idx.chunks[order[i]]
		passages[i] = model.Passage{Text: c.Text, Source: c.Source, Score: scores[order[i]]}
	}

	r.l.Debugf(ctx, "%s: %d passage(s) for %q", LogPrefixRetrieve, len(passages), query)
	return passages, nil
}
