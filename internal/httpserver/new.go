package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"soroia/config"
	"soroia/internal/chat"
	chatHTTP "soroia/internal/chat/delivery/http"
	tgDelivery "soroia/internal/chat/delivery/telegram"
	"soroia/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Chat domain
	chatUC          chat.UseCase
	images          chatHTTP.ImageLoader
	telegramHandler tgDelivery.Handler

	catalog Pinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	// Chat domain
	ChatUseCase chat.UseCase
	Images      chatHTTP.ImageLoader
	// TelegramHandler is optional; the webhook route is skipped when nil.
	TelegramHandler tgDelivery.Handler

	// Catalog backs the readiness probe; /ready always succeeds when nil.
	Catalog Pinger
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimit:       cfg.RateLimit,
		chatUC:          cfg.ChatUseCase,
		images:          cfg.Images,
		telegramHandler: cfg.TelegramHandler,
		catalog:         cfg.Catalog,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.images == nil {
		return errors.New("image loader is required")
	}
	return nil
}
