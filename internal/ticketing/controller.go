package ticketing

import (
	"errors"
	"net/http"
	"time"

	"boxoffice/internal/shared/utils/response"
	"boxoffice/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service Service
	log     *logger.Logger
}

func NewController(service Service) *Controller {
	return &Controller{
		service: service,
		log:     logger.GetDefault(),
	}
}

// GetAvailability reports how many seats are open right now alongside the
// fixed venue capacity.
func (c *Controller) GetAvailability(ctx *gin.Context) {
	_, rows, seatsPerRow := c.service.VenueInfo()

	resp := AvailabilityResponse{
		AvailableSeats: c.service.NumSeatsAvailable(),
		TotalSeats:     rows * seatsPerRow,
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Seat availability retrieved", resp, nil)
}

// HoldSeats finds and holds the best available seats for the customer.
func (c *Controller) HoldSeats(ctx *gin.Context) {
	var req HoldSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, bindingErrors(err))
		return
	}

	hold, err := c.service.FindAndHoldSeats(req.NumSeats, req.CustomerEmail)
	if err != nil {
		c.respondError(ctx, "Failed to hold seats", err)
		return
	}

	c.log.LogSeatHoldCreated(hold.ID, hold.NumSeats, hold.CustomerEmail)

	resp := SeatHoldResponse{
		HoldID:        hold.ID,
		NumSeats:      hold.NumSeats,
		SeatIDs:       hold.SeatIDs,
		CustomerEmail: hold.CustomerEmail,
		ExpiresAt:     hold.ExpiresAt,
		TTL:           int(time.Until(hold.ExpiresAt).Seconds()),
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Seats held successfully", resp, nil)
}

// ReserveSeats converts an active hold into a permanent reservation.
func (c *Controller) ReserveSeats(ctx *gin.Context) {
	var req ReserveSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, bindingErrors(err))
		return
	}

	code, err := c.service.ReserveSeats(req.HoldID, req.CustomerEmail)
	if err != nil {
		c.respondError(ctx, "Failed to reserve seats", err)
		return
	}

	c.log.LogReservationConfirmed(req.HoldID, code)

	resp := ReservationResponse{
		HoldID:           req.HoldID,
		ConfirmationCode: code,
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Seats reserved successfully", resp, nil)
}

// GetVenueLayout renders the seat grid for display clients.
func (c *Controller) GetVenueLayout(ctx *gin.Context) {
	id, rows, seatsPerRow := c.service.VenueInfo()

	resp := VenueLayoutResponse{
		VenueID:     id,
		Rows:        rows,
		SeatsPerRow: seatsPerRow,
		Layout:      c.service.SeatMap(),
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Venue layout retrieved", resp, nil)
}

// respondError maps the service error taxonomy onto HTTP status codes.
func (c *Controller) respondError(ctx *gin.Context, message string, err error) {
	statusCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidArgument):
		statusCode = http.StatusBadRequest
	case errors.Is(err, ErrInsufficientInventory), errors.Is(err, ErrInventoryFragmented):
		statusCode = http.StatusConflict
	case errors.Is(err, ErrUnknownHold):
		statusCode = http.StatusNotFound
	case errors.Is(err, ErrHoldOwnershipMismatch):
		statusCode = http.StatusForbidden
	case errors.Is(err, ErrHoldExpired):
		statusCode = http.StatusGone
	}

	if statusCode == http.StatusInternalServerError {
		c.log.LogHTTPError(ctx, err, statusCode)
	}
	response.RespondJSON(ctx, "error", statusCode, message, nil, err.Error())
}

// bindingErrors flattens validator failures into a field->message map so
// clients see which input was rejected instead of one opaque string.
func bindingErrors(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required"
		case "email":
			fields[fe.Field()] = "must be a valid email address"
		case "min":
			fields[fe.Field()] = "must be at least " + fe.Param()
		default:
			fields[fe.Field()] = "failed validation on " + fe.Tag()
		}
	}
	return fields
}
