package routes

import (
	"net/http"

	"leaguestats/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.SummaryHandler:
			r.registerSummaryHandler(handler)
		case *handlers.HealthHandler:
			r.Engine.GET("/healthz", handler.GetHealth)
		}
	}
}

// Register the summary handler.
func (r *Router) registerSummaryHandler(handler *handlers.SummaryHandler) {
	player := r.api.Group("/player")
	{
		player.GET("/summary", handler.GetPlayerSummary)
	}
}

// SetupMetrics serves the metrics handler, outside of the api group.
func (r *Router) SetupMetrics(handler http.Handler) {
	r.Engine.GET("/metrics", gin.WrapH(handler))
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
