package artifact

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	_ "github.com/viant/afsc/s3"

	"soroia/pkg/log"
)

// Options configures a Resolver.
type Options struct {
	Mode      string // ModeLocal or ModeS3
	DataDir   string // local image root
	SourceURL string // remote image root, e.g. s3://museosorolla
	CacheDir  string // download cache for remote images
}

// Resolver maps an artifact path to a readable local file.
type Resolver struct {
	fs  afs.Service
	l   log.Logger
	opt Options
}

// NewResolver creates a Resolver.
func NewResolver(fs afs.Service, l log.Logger, opt Options) *Resolver {
	return &Resolver{fs: fs, l: l, opt: opt}
}

// Resolve returns the local location of path. In s3 mode the image is
// downloaded into the cache directory unless a cached copy exists.
func (r *Resolver) Resolve(ctx context.Context, path string) (string, error) {
	if !filepath.IsLocal(path) || strings.Contains(path, `\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	if r.opt.Mode != ModeS3 {
		local := filepath.Join(r.opt.DataDir, path)
		ok, err := r.fs.Exists(ctx, local)
		if err != nil || !ok {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return local, nil
	}

	local := filepath.Join(r.opt.CacheDir, path)
	if ok, _ := r.fs.Exists(ctx, local); ok {
		return local, nil
	}

	src := strings.TrimSuffix(r.opt.SourceURL, "/") + "/" + filepath.ToSlash(path)
	data, err := r.fs.DownloadWithURL(ctx, src)
	if err != nil {
		r.l.Warnf(ctx, "%s: download %s: %v", LogPrefixResolve, src, err)
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err := r.fs.Upload(ctx, local, 0644, bytes.NewReader(data)); err != nil {
		r.l.Errorf(ctx, "%s: cache %s: %v", LogPrefixResolve, local, err)
		return "", err
	}

	r.l.Debugf(ctx, "%s: cached %s", LogPrefixResolve, src)
	return local, nil
}

// Load resolves path and returns the image bytes.
func (r *Resolver) Load(ctx context.Context, path string) ([]byte, error) {
	local, err := r.Resolve(ctx, path)
	if err != nil {
		return nil, err
	}
	return r.fs.DownloadWithURL(ctx, local)
}
