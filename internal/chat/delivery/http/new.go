package http

import (
	"context"

	"soroia/internal/chat"
	"soroia/pkg/log"
)

// ImageLoader reads the bytes of an artifact image.
type ImageLoader interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

type handler struct {
	l      log.Logger
	uc     chat.UseCase
	images ImageLoader
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, images ImageLoader) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		images: images,
	}
}
