package venue

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Venue owns the full seat inventory for one rectangular seating layout.
// Seat ids are assigned row-major starting at 1, so the id to position
// mapping is fixed for the venue's lifetime:
//
//	row    = (id-1)/seatsPerRow + 1
//	column = (id-1)%seatsPerRow + 1
//
// Venue performs no locking of its own; the ticketing service serializes
// every call that reads or writes seat state.
type Venue struct {
	id          int
	rows        int
	seatsPerRow int
	seats       map[int]*Seat
}

// New builds a venue with rows*seatsPerRow seats and a precomputed rating
// per seat. Dimensions must be positive.
func New(id, rows, seatsPerRow int) (*Venue, error) {
	if rows <= 0 || seatsPerRow <= 0 {
		return nil, fmt.Errorf("venue %d: rows and seats per row must be positive, got %dx%d", id, rows, seatsPerRow)
	}

	v := &Venue{
		id:          id,
		rows:        rows,
		seatsPerRow: seatsPerRow,
		seats:       make(map[int]*Seat, rows*seatsPerRow),
	}

	counter := 1
	for i := 1; i <= rows; i++ {
		for j := 1; j <= seatsPerRow; j++ {
			v.seats[counter] = &Seat{
				id:     counter,
				row:    i,
				column: j,
				rating: seatRating(i, j, seatsPerRow),
			}
			counter++
		}
	}

	return v, nil
}

// seatRating scores a seat by distance from the row center plus the row
// number. Lower is better: front rows and center columns win.
func seatRating(row, column, seatsPerRow int) float64 {
	columnScore := math.Abs(float64(seatsPerRow-1)/2 - float64(column-1))
	return columnScore + float64(row)
}

func (v *Venue) ID() int          { return v.id }
func (v *Venue) Rows() int        { return v.rows }
func (v *Venue) SeatsPerRow() int { return v.seatsPerRow }

// TotalSeats returns the fixed venue capacity.
func (v *Venue) TotalSeats() int {
	return v.rows * v.seatsPerRow
}

// AvailableSeatCount counts seats that are neither held nor reserved at
// the given instant. The count is computed fresh on every call because
// availability is time-dependent through lazy hold expiry; caching it
// would go stale the moment a hold times out.
func (v *Venue) AvailableSeatCount(now time.Time) int {
	count := 0
	for _, s := range v.seats {
		if s.Available(now) {
			count++
		}
	}
	return count
}

// FindContiguousSeats searches for a run of numSeats adjacent seats in a
// single row, every one of them available and absent from exclude. Rows
// are scanned in ascending order and the first row that can fully satisfy
// the request wins; within that row the window with the lowest average
// rating is chosen, earlier windows winning ties. Returns nil when no row
// has a qualifying run. Runs never span rows.
func (v *Venue) FindContiguousSeats(numSeats int, exclude []int, now time.Time) []int {
	if numSeats <= 0 || numSeats > v.seatsPerRow {
		return nil
	}

	excluded := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	for row := 1; row <= v.rows; row++ {
		if ids := v.findRowSeats(numSeats, row, excluded, now); len(ids) == numSeats {
			return ids
		}
	}
	return nil
}

// findRowSeats slides a window of width numSeats across one row and keeps
// the window with the strictly smallest average rating.
func (v *Venue) findRowSeats(numSeats, row int, excluded map[int]bool, now time.Time) []int {
	base := (row - 1) * v.seatsPerRow

	var best []int
	bestAverage := 0.0

	for start := 1; start <= v.seatsPerRow-numSeats+1; start++ {
		sum := 0.0
		ids := make([]int, 0, numSeats)

		for offset := 0; offset < numSeats; offset++ {
			id := base + start + offset
			seat := v.seats[id]
			if excluded[id] || !seat.Available(now) {
				ids = nil
				break
			}
			sum += seat.Rating()
			ids = append(ids, id)
		}
		if ids == nil {
			continue
		}

		average := sum / float64(numSeats)
		if best == nil || average < bestAverage {
			best = ids
			bestAverage = average
		}
	}

	return best
}

// HoldSeats places a time-limited hold on every listed seat. All seats
// are validated before any one of them is mutated, so a refused hold
// leaves the venue untouched; the loop itself is not atomic and relies on
// the caller's lock.
func (v *Venue) HoldSeats(seatIDs []int, expires time.Time, now time.Time) error {
	for _, id := range seatIDs {
		seat, ok := v.seats[id]
		if !ok {
			return fmt.Errorf("%w: seat %d", ErrSeatNotFound, id)
		}
		if !seat.Available(now) {
			return fmt.Errorf("%w: seat %d", ErrSeatUnavailable, id)
		}
	}

	for _, id := range seatIDs {
		seat := v.seats[id]
		if err := seat.setHold(true, now); err != nil {
			return fmt.Errorf("seat %d: %w", id, err)
		}
		seat.setExpires(expires)
	}
	return nil
}

// ReserveSeats converts the listed seats from held to reserved, clearing
// their hold deadlines. Same pre-check pass as HoldSeats: either every
// seat is eligible or nothing changes.
func (v *Venue) ReserveSeats(seatIDs []int) error {
	for _, id := range seatIDs {
		seat, ok := v.seats[id]
		if !ok {
			return fmt.Errorf("%w: seat %d", ErrSeatNotFound, id)
		}
		if seat.Reserved() {
			return fmt.Errorf("%w: seat %d", ErrSeatAlreadyReserved, id)
		}
	}

	for _, id := range seatIDs {
		seat := v.seats[id]
		seat.setExpires(time.Time{})
		seat.held = false
		if err := seat.setReserved(true); err != nil {
			return fmt.Errorf("seat %d: %w", id, err)
		}
	}
	return nil
}

// Seat exposes a single seat for inspection.
func (v *Venue) Seat(id int) (*Seat, bool) {
	s, ok := v.seats[id]
	return s, ok
}

// Layout renders the seat grid for terminal display. Each cell shows the
// seat's state (A available, H held, R reserved), id and rating.
func (v *Venue) Layout(now time.Time) string {
	var sb strings.Builder
	sb.WriteString("\nSeat Layout | Format: A|H|R (Seat|Rating)\n")
	sb.WriteString("-----------------------------------------------------\n")

	counter := 1
	for i := 1; i <= v.rows; i++ {
		for j := 1; j <= v.seatsPerRow; j++ {
			seat := v.seats[counter]
			counter++

			state := "H"
			if seat.Reserved() {
				state = "R"
			} else if seat.Available(now) {
				state = "A"
			}
			fmt.Fprintf(&sb, "%s(%d|%.1f)  ", state, seat.ID(), seat.Rating())
		}
		sb.WriteString("\n")
	}
	sb.WriteString("-----------------------------------------------------\n")
	return sb.String()
}
