package retrieval

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// LoadCorpus reads every *.txt object directly under corpusURL. corpusURL may
// be a local directory or any URL afs can list (s3://, gs://, mem://).
// Documents are returned ordered by source name.
func LoadCorpus(ctx context.Context, fs afs.Service, corpusURL string) ([]Document, error) {
	objects, err := fs.List(ctx, corpusURL)
	if err != nil {
		return nil, fmt.Errorf("list corpus %s: %w", corpusURL, err)
	}

	var docs []Document
	for _, obj := range objects {
		if obj.IsDir() || !strings.EqualFold(path.Ext(obj.Name()), CorpusExtension) {
			continue
		}
		data, err := fs.DownloadWithURL(ctx, obj.URL())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", obj.URL(), err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			continue
		}
		docs = append(docs, Document{Source: path.Base(url.Path(obj.URL())), Text: text})
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCorpus, corpusURL)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Source < docs[j].Source })
	return docs, nil
}
