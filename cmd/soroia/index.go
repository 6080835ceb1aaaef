package main

import (
	"fmt"

	"soroia/internal/app"
)

// IndexCmd pushes the corpus into the Qdrant collection.
type IndexCmd struct {
	Corpus string `short:"c" long:"corpus" description:"corpus location, overrides retrieval.corpus_url"`
}

func (c *IndexCmd) Execute(_ []string) error {
	ctx, stop, cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer stop()

	if c.Corpus != "" {
		cfg.Retrieval.CorpusURL = c.Corpus
	}

	indexer, err := app.NewIndexer(cfg, logger)
	if err != nil {
		return err
	}

	stats, err := indexer.Index(ctx)
	if err != nil {
		return fmt.Errorf("index %s: %w", cfg.Retrieval.CorpusURL, err)
	}

	created := ""
	if stats.Created {
		created = " (collection created)"
	}
	fmt.Printf("Indexed %d documents as %d chunks into %s%s\n", stats.Documents, stats.Chunks, cfg.Qdrant.CollectionName, created)
	return nil
}
