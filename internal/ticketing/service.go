package ticketing

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"boxoffice/internal/shared/clock"
	"boxoffice/internal/venue"
)

// Service is the allocator's contract toward its callers (HTTP layer,
// console client). All three seat operations execute as single critical
// sections over the shared venue and hold map.
type Service interface {
	// NumSeatsAvailable reports how many seats are neither held nor
	// reserved right now.
	NumSeatsAvailable() int

	// FindAndHoldSeats finds the best contiguous block for numSeats (or
	// assembles one from smaller blocks), places a time-limited hold on it
	// and returns the hold record.
	FindAndHoldSeats(numSeats int, customerEmail string) (*SeatHold, error)

	// ReserveSeats converts an active hold owned by customerEmail into a
	// permanent reservation and returns the confirmation code.
	ReserveSeats(seatHoldID int, customerEmail string) (string, error)

	// VenueInfo returns the fixed venue dimensions.
	VenueInfo() (id, rows, seatsPerRow int)

	// SeatMap renders the current seat grid for display.
	SeatMap() string
}

type service struct {
	// mu serializes every operation below. The search-then-hold sequence
	// reads availability, picks a block and mutates seat state in separate
	// steps; without one lock over the whole sequence two requests could
	// both find, then both hold, the same seats. The lock also covers the
	// hold map, the id counter and the lazy expiry writes triggered by
	// availability reads.
	mu sync.Mutex

	venue      *venue.Venue
	clk        clock.Clock
	holdTTL    time.Duration
	nextHoldID int
	holds      map[int]*SeatHold
}

// NewService builds the allocator for one venue. holdTTL is how long a
// hold keeps seats off the market before they lapse back to available.
func NewService(v *venue.Venue, clk clock.Clock, holdTTL time.Duration) Service {
	return &service{
		venue:   v,
		clk:     clk,
		holdTTL: holdTTL,
		holds:   make(map[int]*SeatHold),
	}
}

func (s *service) NumSeatsAvailable() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.venue.AvailableSeatCount(s.clk.Now())
}

func (s *service) FindAndHoldSeats(numSeats int, customerEmail string) (*SeatHold, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(customerEmail) == "" {
		return nil, fmt.Errorf("%w: customer email is required", ErrInvalidArgument)
	}
	if numSeats <= 0 {
		return nil, fmt.Errorf("%w: number of seats must be positive, got %d", ErrInvalidArgument, numSeats)
	}
	if numSeats >= s.venue.TotalSeats() {
		return nil, fmt.Errorf("%w: cannot hold the whole venue (%d seats requested of %d total)",
			ErrInvalidArgument, numSeats, s.venue.TotalSeats())
	}

	now := s.clk.Now()
	if available := s.venue.AvailableSeatCount(now); available < numSeats {
		return nil, fmt.Errorf("%w: %d requested, %d available", ErrInsufficientInventory, numSeats, available)
	}

	// Best case: the whole request fits in one contiguous run.
	seats := s.venue.FindContiguousSeats(numSeats, nil, now)
	if len(seats) == 0 {
		seats = s.findSeatBlocks(numSeats, now)
		if len(seats) != numSeats {
			return nil, fmt.Errorf("%w: %d seats requested", ErrInventoryFragmented, numSeats)
		}
	}

	return s.holdSeats(numSeats, seats, customerEmail, now)
}

// findSeatBlocks assembles the request from several smaller contiguous
// blocks. The block size starts one below the request and shrinks on each
// miss; every found block is excluded from subsequent searches and the
// size is re-aimed at whatever remains outstanding.
func (s *service) findSeatBlocks(numSeats int, now time.Time) []int {
	var blockSeats []int
	seatsFound := 0
	blockSize := numSeats - 1

	for blockSize > 0 && seatsFound <= numSeats {
		seatIDs := s.venue.FindContiguousSeats(blockSize, blockSeats, now)
		if len(seatIDs) > 0 {
			seatsFound += len(seatIDs)
			blockSize = numSeats - seatsFound
			blockSeats = append(blockSeats, seatIDs...)
		} else {
			blockSize--
		}
	}

	return blockSeats
}

// holdSeats commits a successful search: marks the seats held in the
// venue, issues the next hold id and records the hold in the active set.
func (s *service) holdSeats(numSeats int, seats []int, customerEmail string, now time.Time) (*SeatHold, error) {
	expires := now.Add(s.holdTTL)
	if err := s.venue.HoldSeats(seats, expires, now); err != nil {
		// The search just confirmed every seat available inside this same
		// critical section, so a refusal here is a consistency fault.
		return nil, fmt.Errorf("holding seats: %w", err)
	}

	s.nextHoldID++
	hold := &SeatHold{
		ID:            s.nextHoldID,
		NumSeats:      numSeats,
		SeatIDs:       seats,
		CustomerEmail: customerEmail,
		ExpiresAt:     expires,
	}
	s.holds[hold.ID] = hold
	return hold, nil
}

func (s *service) ReserveSeats(seatHoldID int, customerEmail string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(customerEmail) == "" {
		return "", fmt.Errorf("%w: customer email is required", ErrInvalidArgument)
	}
	if seatHoldID <= 0 {
		return "", fmt.Errorf("%w: seat hold id must be positive, got %d", ErrInvalidArgument, seatHoldID)
	}

	hold, ok := s.holds[seatHoldID]
	if !ok {
		return "", fmt.Errorf("%w: id %d", ErrUnknownHold, seatHoldID)
	}
	if hold.CustomerEmail != customerEmail {
		return "", fmt.Errorf("%w: id %d", ErrHoldOwnershipMismatch, seatHoldID)
	}

	// The venue releases expired seats lazily, so an expired hold can
	// still be sitting in the active set. Re-check the deadline before
	// touching seat state: the seats may already belong to someone else.
	if !s.clk.Now().Before(hold.ExpiresAt) {
		delete(s.holds, seatHoldID)
		return "", fmt.Errorf("%w: id %d", ErrHoldExpired, seatHoldID)
	}

	delete(s.holds, seatHoldID)
	if err := s.venue.ReserveSeats(hold.SeatIDs); err != nil {
		return "", fmt.Errorf("reserving seats: %w", err)
	}

	return "R" + strconv.Itoa(hold.ID), nil
}

func (s *service) VenueInfo() (int, int, int) {
	return s.venue.ID(), s.venue.Rows(), s.venue.SeatsPerRow()
}

func (s *service) SeatMap() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.venue.Layout(s.clk.Now())
}
