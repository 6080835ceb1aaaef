package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"soroia/internal/chat"
	pkgLog "soroia/pkg/log"
	pkgTelegram "soroia/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// ImageLoader reads the bytes of an artifact image.
type ImageLoader interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

type handler struct {
	l      pkgLog.Logger
	uc     chat.UseCase
	bot    *pkgTelegram.Bot
	images ImageLoader
}

// New creates a new Telegram delivery handler. images may be nil, in which
// case artifacts are listed by inventory number only.
func New(l pkgLog.Logger, uc chat.UseCase, bot *pkgTelegram.Bot, images ImageLoader) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		images: images,
	}
}
