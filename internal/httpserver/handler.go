package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "github.com/g3lasio/Andy-AI-by-Claude/internal/chat/delivery/http"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	chatHTTP.RegisterRoutes(api.Group("/chat"), srv.chatHandler, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered at /api/v1/chat")
}
