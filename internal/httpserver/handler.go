package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "soroia/internal/chat/delivery/http"
	"soroia/internal/middleware"
	"soroia/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == model.EnvironmentProduction {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.rateLimit)

	api := srv.gin.Group("/api/v1")
	if err := srv.setupChatDomain(ctx, api, mw); err != nil {
		return err
	}

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", mw.RateLimit(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	return nil
}

// setupChatDomain registers /api/v1/chat/sessions and /api/v1/artifacts.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC, srv.images)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
