package ticketing

import (
	"github.com/gin-gonic/gin"
)

func SetupTicketingRoutes(rg *gin.RouterGroup, controller *Controller) {

	// SEAT OPERATIONS (core booking flow)

	seats := rg.Group("/seats")
	{
		seats.GET("/available", controller.GetAvailability) // GET /api/v1/seats/available
		seats.POST("/hold", controller.HoldSeats)           // POST /api/v1/seats/hold
		seats.POST("/reserve", controller.ReserveSeats)     // POST /api/v1/seats/reserve
	}

	// VENUE DISPLAY

	venue := rg.Group("/venue")
	{
		venue.GET("/layout", controller.GetVenueLayout) // GET /api/v1/venue/layout
	}
}
