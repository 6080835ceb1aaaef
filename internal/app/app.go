package app

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/viant/afs"

	"soroia/config"
	"soroia/internal/artifact"
	"soroia/internal/assistant"
	catalogRepo "soroia/internal/catalog/repository"
	"soroia/internal/catalog/repository/sqldb"
	catalogUC "soroia/internal/catalog/usecase"
	"soroia/internal/chat"
	chatUC "soroia/internal/chat/usecase"
	"soroia/internal/intent"
	"soroia/internal/narrator"
	"soroia/internal/query"
	"soroia/internal/retrieval"
	"soroia/internal/retrieval/local"
	"soroia/internal/retrieval/remote"
	"soroia/internal/session"
	"soroia/pkg/llmprovider"
	"soroia/pkg/log"
	pkgQdrant "soroia/pkg/qdrant"
	"soroia/pkg/voyage"
)

// App is the assembled assistant shared by the HTTP server and the CLI.
type App struct {
	Chat   chat.UseCase
	Images *artifact.Resolver

	db *sql.DB
}

// New wires every component of the assistant from cfg.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	// 1. Model gateway
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	managerCfg, err := llmprovider.ManagerConfigFrom(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}
	llm := llmprovider.NewManager(providers, managerCfg, l)
	for _, p := range providers {
		l.Infof(ctx, "LLM provider enabled: %s (%s)", p.Name(), p.Model())
	}

	// 2. Catalog
	db, err := sqldb.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog database: %w", err)
	}
	repo := sqldb.New(db, l, catalogRepo.Options{
		Driver:  cfg.Database.Driver,
		MaxRows: cfg.Database.MaxRows,
		Timeout: cfg.Database.Timeout,
	})
	catalog := catalogUC.New(repo, l)

	// 3. Retrieval
	fs := afs.New()
	retriever, err := newRetriever(cfg, fs, l)
	if err != nil {
		db.Close()
		return nil, err
	}

	// 4. Routing pipeline
	dialect := query.DialectPostgres
	if cfg.Database.Driver == sqldb.DriverSQLite {
		dialect = query.DialectSQLite
	}
	pipeline := assistant.New(
		intent.New(llm, l),
		query.New(llm, l, dialect),
		catalog,
		retriever,
		narrator.New(llm, l),
		l,
		assistant.Options{
			HistoryEnabled: cfg.Assistant.HistoryEnabled,
			HistoryPairs:   cfg.Assistant.HistoryPairs,
			DebugMode:      cfg.Assistant.DebugMode,
		},
	)

	// 5. Sessions and artifacts
	store := session.NewStore(cfg.Session.MaxSessions, cfg.Session.TTL)
	images := artifact.NewResolver(fs, l, artifact.Options{
		Mode:      cfg.Artifacts.Mode,
		DataDir:   cfg.Artifacts.DataDir,
		SourceURL: bucketURL(cfg.Artifacts.Bucket),
		CacheDir:  cfg.Artifacts.CacheDir,
	})

	l.Infof(ctx, "Assistant ready: retrieval=%s artifacts=%s database=%s", cfg.Retrieval.Mode, cfg.Artifacts.Mode, cfg.Database.Driver)

	return &App{
		Chat:   chatUC.New(store, pipeline, catalog, l),
		Images: images,
		db:     db,
	}, nil
}

// PingContext checks that the catalog database is reachable.
func (a *App) PingContext(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

// Close releases the catalog connection pool.
func (a *App) Close() error {
	return a.db.Close()
}

// NewIndexer builds the Qdrant indexer used by the index command.
func NewIndexer(cfg *config.Config, l log.Logger) (retrieval.Indexer, error) {
	embedder, err := newEmbedder(cfg.Voyage)
	if err != nil {
		return nil, err
	}
	return remote.NewIndexer(afs.New(), newQdrant(cfg.Qdrant), embedder, l, remoteOptions(cfg)), nil
}

func newRetriever(cfg *config.Config, fs afs.Service, l log.Logger) (retrieval.Retriever, error) {
	embedder, err := newEmbedder(cfg.Voyage)
	if err != nil {
		return nil, err
	}

	switch cfg.Retrieval.Mode {
	case config.RetrievalModeRemote:
		return remote.New(newQdrant(cfg.Qdrant), embedder, l, remoteOptions(cfg)), nil
	case config.RetrievalModeLocal, "":
		return local.New(fs, embedder, l, local.Options{
			CorpusURL:    cfg.Retrieval.CorpusURL,
			ChunkSize:    cfg.Retrieval.ChunkSize,
			ChunkOverlap: cfg.Retrieval.ChunkOverlap,
			TopK:         cfg.Retrieval.TopKLocal,
			BatchSize:    cfg.Retrieval.BatchSize,
			Concurrency:  cfg.Retrieval.Concurrency,
		}), nil
	default:
		return nil, fmt.Errorf("unknown retrieval mode %q", cfg.Retrieval.Mode)
	}
}

func remoteOptions(cfg *config.Config) remote.Options {
	return remote.Options{
		Collection:   cfg.Qdrant.CollectionName,
		Namespace:    cfg.Qdrant.Namespace,
		TopK:         cfg.Retrieval.TopKRemote,
		VectorSize:   cfg.Qdrant.VectorSize,
		CorpusURL:    cfg.Retrieval.CorpusURL,
		ChunkSize:    cfg.Retrieval.ChunkSize,
		ChunkOverlap: cfg.Retrieval.ChunkOverlap,
		BatchSize:    cfg.Retrieval.BatchSize,
	}
}

func newEmbedder(cfg config.VoyageConfig) (*voyage.Client, error) {
	client, err := voyage.New(cfg.APIKey)
	if err != nil {
		return nil, err
	}
	if cfg.Model != "" {
		client.WithModel(cfg.Model)
	}
	if cfg.BaseURL != "" {
		client.WithBaseURL(cfg.BaseURL)
	}
	return client, nil
}

func newQdrant(cfg config.QdrantConfig) *pkgQdrant.Client {
	client := pkgQdrant.NewClient(cfg.URL)
	if cfg.APIKey != "" {
		client = client.WithAPIKey(cfg.APIKey)
	}
	return client
}

// bucketURL accepts a bare bucket name or a full storage URL.
func bucketURL(bucket string) string {
	if bucket == "" || strings.Contains(bucket, "://") {
		return bucket
	}
	return "s3://" + bucket
}
