package remote

import (
	"context"
	"fmt"
	"strings"

	"soroia/internal/model"
	"soroia/internal/retrieval"
	pkgQdrant "soroia/pkg/qdrant"
	"soroia/pkg/voyage"
)

// Retrieve embeds query and returns the TopK points of the configured
// namespace. Points without a text payload are skipped.
func (r *implRetriever) Retrieve(ctx context.Context, query string) ([]model.Passage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, retrieval.ErrEmptyQuery
	}

	embs, err := r.embedder.Embed(ctx, []string{query}, voyage.InputTypeQuery)
	if err != nil || len(embs) == 0 {
		r.l.Errorf(ctx, "%s: embed query: %v", LogPrefixRetrieve, err)
		return nil, fmt.Errorf("%w: %v", retrieval.ErrEmbedding, err)
	}

	resp, err := r.client.SearchPoints(ctx, r.opt.Collection, pkgQdrant.SearchRequest{
		Vector:      embs[0],
		Limit:       r.opt.TopK,
		WithPayload: true,
		Filter:      pkgQdrant.MatchKeyword(retrieval.PayloadNamespace, r.opt.Namespace),
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: search: %v", LogPrefixRetrieve, err)
		return nil, fmt.Errorf("%w: %v", retrieval.ErrRetrievalFailed, err)
	}

	passages := make([]model.Passage, 0, len(resp.Result))
	for _, p := range resp.Result {
		text, ok := p.Payload[retrieval.PayloadText].(string)
		if !ok || text == "" {
			r.l.Warnf(ctx, "%s: point %s has no text payload", LogPrefixRetrieve, p.ID)
			continue
		}
		source, _ := p.Payload[retrieval.PayloadSource].(string)
		passages = append(passages, model.Passage{Text: text, Source: source, Score: p.Score})
	}

	r.l.Debugf(ctx, "%s: %d passage(s) for %q", LogPrefixRetrieve, len(passages), query)
	return passages, nil
}
