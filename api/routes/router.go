// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"boxoffice/internal/shared/config"
	"boxoffice/internal/ticketing"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config        *config.Config
	ticketService ticketing.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, ticketService ticketing.Service) *Router {
	return &Router{
		config:        cfg,
		ticketService: ticketService,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupTicketingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "boxoffice",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "operational",
			"api_version":     r.config.APIVersion,
			"available_seats": r.ticketService.NumSeatsAvailable(),
			"timestamp":       time.Now(),
		})
	})
}

// setupTicketingRoutes configures the seat hold and reservation routes
func (r *Router) setupTicketingRoutes(rg *gin.RouterGroup) {
	ticketController := ticketing.NewController(r.ticketService)
	ticketing.SetupTicketingRoutes(rg, ticketController)
}
