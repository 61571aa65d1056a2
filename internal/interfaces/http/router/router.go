package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by handlers that register their own routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router wires handlers into the gin engine
type Router struct {
	engine     *gin.Engine
	registrars []RouteRegistrar
}

// New creates a router over the given engine
func New(engine *gin.Engine) *Router {
	return &Router{engine: engine}
}

// Register adds route registrars to the router
func (r *Router) Register(registrars ...RouteRegistrar) {
	r.registrars = append(r.registrars, registrars...)
}

// Setup mounts all registered routes under /api
func (r *Router) Setup() {
	api := r.engine.Group("/api")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}
