// Package api exposes the projector registry and control operations over
// HTTP.
package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pmartell/sonyadcp/pkg/api/handlers"
	"github.com/pmartell/sonyadcp/pkg/registry"
	"github.com/pmartell/sonyadcp/pkg/sdap"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine   *gin.Engine
	registry *registry.Registry
	listener *sdap.Listener
}

// NewRouter creates a new API router
func NewRouter(reg *registry.Registry, listener *sdap.Listener) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:   engine,
		registry: reg,
		listener: listener,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.registry)
	r.engine.GET("/health", healthHandler.Health)

	store := r.registry.Projectors()

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		// Health
		v1.GET("/health", healthHandler.Health)

		// Discovery
		discoveryHandler := handlers.NewDiscoveryHandler(r.listener, store)
		v1.POST("/discovery", discoveryHandler.Discover)

		// Projectors
		projectorsHandler := handlers.NewProjectorsHandler(store)
		controlHandler := handlers.NewControlHandler(store)
		projectors := v1.Group("/projectors")
		{
			projectors.GET("", projectorsHandler.ListProjectors)
			projectors.POST("", projectorsHandler.AddProjector)
			projectors.GET("/:id", projectorsHandler.GetProjector)
			projectors.PATCH("/:id", projectorsHandler.UpdateProjector)
			projectors.DELETE("/:id", projectorsHandler.RemoveProjector)

			// Projector control
			projectors.GET("/:id/state", controlHandler.GetState)
			projectors.POST("/:id/state", controlHandler.SetState)
			projectors.POST("/:id/command", controlHandler.SendCommand)
			projectors.POST("/:id/keys/:key", controlHandler.PressKey)
			projectors.GET("/:id/sensors", controlHandler.GetSensors)
		}
	}
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
