package venue

import (
	"errors"
	"time"
)

// Internal seat-state errors. Under the ticketing service's lock these
// should never fire; one surfacing means the hold/reserve orchestration
// has a consistency bug.
var (
	ErrSeatUnavailable     = errors.New("seat is not available to hold")
	ErrSeatAlreadyReserved = errors.New("seat is already reserved")
	ErrSeatNotFound        = errors.New("seat not found in venue")
)

// Seat is a single unit of inventory. Position and rating are fixed at
// construction; only the hold/reserved flags and the hold deadline change
// over the seat's lifetime.
type Seat struct {
	id     int
	row    int
	column int
	rating float64

	reserved bool
	held     bool
	expires  time.Time // zero while no hold deadline is attached
}

func (s *Seat) ID() int         { return s.id }
func (s *Seat) Row() int        { return s.row }
func (s *Seat) Column() int     { return s.column }
func (s *Seat) Rating() float64 { return s.rating }
func (s *Seat) Reserved() bool  { return s.reserved }
func (s *Seat) Held() bool      { return s.held }

// Available reports whether the seat can be handed out at the given
// instant. An expired hold is cleared here, on the read path, instead of
// by a background sweeper; the caller's lock must therefore cover this
// call like any other seat mutation.
func (s *Seat) Available(now time.Time) bool {
	if s.held && !s.expires.IsZero() && !now.Before(s.expires) {
		s.held = false
		s.expires = time.Time{}
	}
	return !(s.held || s.reserved)
}

// setHold transitions the seat into or out of the held state. Holding an
// unavailable seat is refused; releasing always succeeds.
func (s *Seat) setHold(held bool, now time.Time) error {
	if held && !s.Available(now) {
		return ErrSeatUnavailable
	}
	s.held = held
	return nil
}

// setExpires attaches or clears the hold deadline. Kept separate from
// setHold so both are assigned together when a hold is placed.
func (s *Seat) setExpires(expires time.Time) {
	s.expires = expires
}

// setReserved marks the seat permanently taken. Reserving twice is a
// state error; reservations are never undone through this path.
func (s *Seat) setReserved(reserved bool) error {
	if reserved && s.reserved {
		return ErrSeatAlreadyReserved
	}
	s.reserved = reserved
	return nil
}
