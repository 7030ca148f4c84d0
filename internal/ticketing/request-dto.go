package ticketing

type HoldSeatsRequest struct {
	NumSeats      int    `json:"num_seats" binding:"required,min=1"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
}

type ReserveSeatsRequest struct {
	HoldID        int    `json:"hold_id" binding:"required,min=1"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
}
