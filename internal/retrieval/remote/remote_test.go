package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/viant/afs"

	"soroia/internal/retrieval"
	"soroia/internal/retrieval/remote"
	"soroia/pkg/log"
	pkgQdrant "soroia/pkg/qdrant"
	"soroia/pkg/voyage"
)

type fixedEmbedder struct {
	err   error
	calls int
}

func (e *fixedEmbedder) Embed(ctx context.Context, texts []string, inputType voyage.InputType) ([][]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2, 0.3}
	}
	return out, nil
}

// fakeQdrant records collection and point operations.
type fakeQdrant struct {
	mu       sync.Mutex
	exists   bool
	created  *pkgQdrant.VectorConfig
	points   map[string]pkgQdrant.Point
	lastReq  pkgQdrant.SearchRequest
	failFind bool
}

func (f *fakeQdrant) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /collections/textos-sorolla/exists", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{"result": map[string]bool{"exists": f.exists}})
	})
	mux.HandleFunc("PUT /collections/textos-sorolla", func(w http.ResponseWriter, r *http.Request) {
		var req pkgQdrant.CreateCollectionRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.exists = true
		f.created = &req.Vectors
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("PUT /collections/textos-sorolla/points", func(w http.ResponseWriter, r *http.Request) {
		var req pkgQdrant.UpsertPointsRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		for _, p := range req.Points {
			f.points[p.ID.(string)] = p
		}
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /collections/textos-sorolla/points/search", func(w http.ResponseWriter, r *http.Request) {
		var req pkgQdrant.SearchRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.lastReq = req
		fail := f.failFind
		f.mu.Unlock()
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"result": [
			{"id": "a", "score": 0.91, "payload": {"text": "Sorolla nació en Valencia.", "source": "biografia.txt"}},
			{"id": "b", "score": 0.80, "payload": {"source": "roto.txt"}},
			{"id": "c", "score": 0.75, "payload": {"text": "El museo abrió en 1932.", "source": "museo.txt"}}
		]}`))
	})
	return mux
}

func TestRetrieve(t *testing.T) {
	fq := &fakeQdrant{points: map[string]pkgQdrant.Point{}}
	ts := httptest.NewServer(fq.handler())
	defer ts.Close()

	client := pkgQdrant.NewClient(ts.URL)

	t.Run("Search With Namespace", func(t *testing.T) {
		r := remote.New(client, &fixedEmbedder{}, log.NewNop(), remote.Options{})
		got, err := r.Retrieve(context.Background(), "¿Dónde nació Sorolla?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 passages, got %+v", got)
		}
		if got[0].Text != "Sorolla nació en Valencia." || got[0].Source != "biografia.txt" || got[0].Score != 0.91 {
			t.Errorf("unexpected passage: %+v", got[0])
		}

		req := fq.lastReq
		if req.Limit != 5 || !req.WithPayload {
			t.Errorf("unexpected search request: %+v", req)
		}
		if req.Filter == nil || req.Filter.Must[0].Key != "namespace" || req.Filter.Must[0].Match.Value != "documentos" {
			t.Errorf("expected namespace filter, got %+v", req.Filter)
		}
	})

	t.Run("Embedding Failure", func(t *testing.T) {
		r := remote.New(client, &fixedEmbedder{err: errors.New("down")}, log.NewNop(), remote.Options{})
		if _, err := r.Retrieve(context.Background(), "x"); !errors.Is(err, retrieval.ErrEmbedding) {
			t.Fatalf("expected ErrEmbedding, got %v", err)
		}
	})

	t.Run("Search Failure", func(t *testing.T) {
		fq.mu.Lock()
		fq.failFind = true
		fq.mu.Unlock()
		defer func() {
			fq.mu.Lock()
			fq.failFind = false
			fq.mu.Unlock()
		}()

		r := remote.New(client, &fixedEmbedder{}, log.NewNop(), remote.Options{})
		if _, err := r.Retrieve(context.Background(), "x"); !errors.Is(err, retrieval.ErrRetrievalFailed) {
			t.Fatalf("expected ErrRetrievalFailed, got %v", err)
		}
	})

	t.Run("Empty Query", func(t *testing.T) {
		emb := &fixedEmbedder{}
		r := remote.New(client, emb, log.NewNop(), remote.Options{})
		if _, err := r.Retrieve(context.Background(), ""); !errors.Is(err, retrieval.ErrEmptyQuery) {
			t.Fatalf("expected ErrEmptyQuery, got %v", err)
		}
		if emb.calls != 0 {
			t.Errorf("embedder should not be called")
		}
	})
}

func TestIndex(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	base := "mem://localhost/remote-index"
	for name, content := range map[string]string{
		"biografia.txt": "Sorolla nació en Valencia.\n\nSe casó con Clotilde García del Castillo.",
		"museo.txt":     "El museo abrió en 1932.",
	} {
		if err := fs.Upload(ctx, base+"/"+name, 0644, strings.NewReader(content)); err != nil {
			t.Fatalf("upload: %v", err)
		}
	}

	fq := &fakeQdrant{points: map[string]pkgQdrant.Point{}}
	ts := httptest.NewServer(fq.handler())
	defer ts.Close()

	opt := remote.Options{CorpusURL: base, ChunkSize: 50, ChunkOverlap: 0, BatchSize: 2}
	ix := remote.NewIndexer(fs, pkgQdrant.NewClient(ts.URL), &fixedEmbedder{}, log.NewNop(), opt)

	stats, err := ix.Index(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stats.Created || stats.Documents != 2 || stats.Chunks != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if fq.created == nil || fq.created.Size != 1024 || fq.created.Distance != "Cosine" {
		t.Errorf("unexpected collection config: %+v", fq.created)
	}
	if len(fq.points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(fq.points))
	}

	id := remote.PointID(retrieval.Chunk{Source: "museo.txt", Index: 0})
	p, ok := fq.points[id]
	if !ok {
		t.Fatalf("missing point %s", id)
	}
	if p.Payload["namespace"] != "documentos" || p.Payload["text"] != "El museo abrió en 1932." {
		t.Errorf("unexpected payload: %+v", p.Payload)
	}

	t.Run("Reindex Is Idempotent", func(t *testing.T) {
		stats, err := ix.Index(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.Created {
			t.Errorf("collection should already exist")
		}
		if len(fq.points) != 3 {
			t.Errorf("expected points to be overwritten, got %d", len(fq.points))
		}
	})
}
