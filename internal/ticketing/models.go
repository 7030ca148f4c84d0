package ticketing

import "time"

// SeatHold is a temporary, time-limited claim on specific seats for one
// customer. It is not yet a reservation: the seats revert to available
// once ExpiresAt passes, and the record itself only leaves the active set
// when the hold is reserved or when a reserve attempt finds it expired.
type SeatHold struct {
	ID            int       `json:"id"`
	NumSeats      int       `json:"num_seats"`
	SeatIDs       []int     `json:"seat_ids"`
	CustomerEmail string    `json:"customer_email"`
	ExpiresAt     time.Time `json:"expires_at"`
}
