package ticketing

import "time"

type AvailabilityResponse struct {
	AvailableSeats int `json:"available_seats"`
	TotalSeats     int `json:"total_seats"`
}

type SeatHoldResponse struct {
	HoldID        int       `json:"hold_id"`
	NumSeats      int       `json:"num_seats"`
	SeatIDs       []int     `json:"seat_ids"`
	CustomerEmail string    `json:"customer_email"`
	ExpiresAt     time.Time `json:"expires_at"`
	TTL           int       `json:"ttl_seconds"`
}

type ReservationResponse struct {
	HoldID           int    `json:"hold_id"`
	ConfirmationCode string `json:"confirmation_code"`
}

type VenueLayoutResponse struct {
	VenueID     int    `json:"venue_id"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
	Layout      string `json:"layout"`
}
