package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mvisser/dyngate/internal/api/handlers"
	"github.com/mvisser/dyngate/internal/config"

	_ "github.com/mvisser/dyngate/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/healthz", h.Health)

	// The protocol route accepts GET (query parameters, the inadyn/router
	// convention) and PUT (JSON body). Anything else gets the original
	// protocol's method token.
	r.GET(cfg.Server.UpdatePath, h.Update)
	r.PUT(cfg.Server.UpdatePath, h.Update)
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "methodnotallowed")
	})
}
