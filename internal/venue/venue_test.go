package venue

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

func mustVenue(t *testing.T, id, rows, seatsPerRow int) *Venue {
	t.Helper()
	v, err := New(id, rows, seatsPerRow)
	if err != nil {
		t.Fatalf("New(%d, %d, %d): %v", id, rows, seatsPerRow, err)
	}
	return v
}

func TestNew(t *testing.T) {
	t.Run("builds all seats row-major", func(t *testing.T) {
		v := mustVenue(t, 1, 3, 4)

		if got := v.TotalSeats(); got != 12 {
			t.Fatalf("TotalSeats() = %d, want 12", got)
		}
		if got := v.AvailableSeatCount(testNow); got != 12 {
			t.Fatalf("AvailableSeatCount() = %d, want 12", got)
		}

		// Seat 6 sits at row 2, column 2.
		s, ok := v.Seat(6)
		if !ok {
			t.Fatal("seat 6 missing")
		}
		if s.Row() != 2 || s.Column() != 2 {
			t.Fatalf("seat 6 at (%d,%d), want (2,2)", s.Row(), s.Column())
		}
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		if _, err := New(1, 0, 5); err == nil {
			t.Fatal("expected error for zero rows")
		}
		if _, err := New(1, 5, -1); err == nil {
			t.Fatal("expected error for negative seats per row")
		}
	})
}

func TestSeatRating(t *testing.T) {
	// 1 row of 3: center seat scores best, front rows beat back rows.
	v := mustVenue(t, 1, 2, 3)

	want := map[int]float64{
		1: 2.0, 2: 1.0, 3: 2.0, // row 1
		4: 3.0, 5: 2.0, 6: 3.0, // row 2
	}
	for id, rating := range want {
		s, _ := v.Seat(id)
		if s.Rating() != rating {
			t.Errorf("seat %d rating = %v, want %v", id, s.Rating(), rating)
		}
	}
}

func TestFindContiguousSeats(t *testing.T) {
	t.Run("ties break toward the first window", func(t *testing.T) {
		// Ratings 2,1,2: both windows average 1.5, the earlier one wins.
		v := mustVenue(t, 1, 1, 3)

		got := v.FindContiguousSeats(2, nil, testNow)
		if !reflect.DeepEqual(got, []int{1, 2}) {
			t.Fatalf("FindContiguousSeats(2) = %v, want [1 2]", got)
		}
	})

	t.Run("prefers the row center", func(t *testing.T) {
		v := mustVenue(t, 1, 1, 5)

		got := v.FindContiguousSeats(3, nil, testNow)
		if !reflect.DeepEqual(got, []int{2, 3, 4}) {
			t.Fatalf("FindContiguousSeats(3) = %v, want [2 3 4]", got)
		}
	})

	t.Run("takes the first row that can satisfy", func(t *testing.T) {
		v := mustVenue(t, 1, 3, 3)

		// Row 1 cannot fit 2 adjacent seats once its center is gone.
		if err := v.ReserveSeats([]int{2}); err != nil {
			t.Fatalf("ReserveSeats: %v", err)
		}

		got := v.FindContiguousSeats(2, nil, testNow)
		if !reflect.DeepEqual(got, []int{4, 5}) {
			t.Fatalf("FindContiguousSeats(2) = %v, want [4 5]", got)
		}
	})

	t.Run("skips windows containing excluded seats", func(t *testing.T) {
		v := mustVenue(t, 1, 1, 5)

		got := v.FindContiguousSeats(2, []int{2, 3}, testNow)
		if !reflect.DeepEqual(got, []int{4, 5}) {
			t.Fatalf("FindContiguousSeats(2, exclude 2,3) = %v, want [4 5]", got)
		}
	})

	t.Run("blocks never span rows", func(t *testing.T) {
		v := mustVenue(t, 1, 2, 3)

		// Seats 3 and 4 are adjacent by id but sit in different rows.
		if err := v.ReserveSeats([]int{1, 2, 5, 6}); err != nil {
			t.Fatalf("ReserveSeats: %v", err)
		}
		if got := v.FindContiguousSeats(2, nil, testNow); got != nil {
			t.Fatalf("FindContiguousSeats(2) = %v, want nil", got)
		}
	})

	t.Run("nil when request exceeds the row width", func(t *testing.T) {
		v := mustVenue(t, 1, 2, 3)
		if got := v.FindContiguousSeats(4, nil, testNow); got != nil {
			t.Fatalf("FindContiguousSeats(4) = %v, want nil", got)
		}
	})

	t.Run("sees seats freed by expired holds", func(t *testing.T) {
		v := mustVenue(t, 1, 1, 3)

		if err := v.HoldSeats([]int{1, 2, 3}, testNow.Add(time.Minute), testNow); err != nil {
			t.Fatalf("HoldSeats: %v", err)
		}
		if got := v.FindContiguousSeats(2, nil, testNow); got != nil {
			t.Fatalf("expected no block while held, got %v", got)
		}

		after := testNow.Add(2 * time.Minute)
		got := v.FindContiguousSeats(2, nil, after)
		if !reflect.DeepEqual(got, []int{1, 2}) {
			t.Fatalf("FindContiguousSeats(2) after expiry = %v, want [1 2]", got)
		}
	})
}

func TestHoldSeats(t *testing.T) {
	t.Run("holds every seat with the same deadline", func(t *testing.T) {
		v := mustVenue(t, 1, 2, 3)
		expires := testNow.Add(time.Minute)

		if err := v.HoldSeats([]int{1, 2}, expires, testNow); err != nil {
			t.Fatalf("HoldSeats: %v", err)
		}
		if got := v.AvailableSeatCount(testNow); got != 4 {
			t.Fatalf("AvailableSeatCount() = %d, want 4", got)
		}
		for _, id := range []int{1, 2} {
			s, _ := v.Seat(id)
			if !s.Held() {
				t.Errorf("seat %d not held", id)
			}
		}
	})

	t.Run("refuses the whole batch when one seat is taken", func(t *testing.T) {
		v := mustVenue(t, 1, 1, 3)
		if err := v.ReserveSeats([]int{2}); err != nil {
			t.Fatalf("ReserveSeats: %v", err)
		}

		err := v.HoldSeats([]int{1, 2, 3}, testNow.Add(time.Minute), testNow)
		if !errors.Is(err, ErrSeatUnavailable) {
			t.Fatalf("expected ErrSeatUnavailable, got %v", err)
		}

		// The pre-check pass must leave the untaken seats untouched.
		if got := v.AvailableSeatCount(testNow); got != 2 {
			t.Fatalf("AvailableSeatCount() = %d, want 2", got)
		}
	})

	t.Run("unknown seat id fails the batch", func(t *testing.T) {
		v := mustVenue(t, 1, 1, 3)
		err := v.HoldSeats([]int{1, 99}, testNow.Add(time.Minute), testNow)
		if !errors.Is(err, ErrSeatNotFound) {
			t.Fatalf("expected ErrSeatNotFound, got %v", err)
		}
	})
}

func TestReserveSeats(t *testing.T) {
	t.Run("converts held seats and clears their deadline", func(t *testing.T) {
		v := mustVenue(t, 1, 1, 3)
		if err := v.HoldSeats([]int{1, 2}, testNow.Add(time.Minute), testNow); err != nil {
			t.Fatalf("HoldSeats: %v", err)
		}
		if err := v.ReserveSeats([]int{1, 2}); err != nil {
			t.Fatalf("ReserveSeats: %v", err)
		}

		// Reserved seats stay off the market long past any hold deadline.
		farFuture := testNow.Add(24 * time.Hour)
		if got := v.AvailableSeatCount(farFuture); got != 1 {
			t.Fatalf("AvailableSeatCount() = %d, want 1", got)
		}
	})

	t.Run("refuses the batch when one seat is already reserved", func(t *testing.T) {
		v := mustVenue(t, 1, 1, 3)
		if err := v.ReserveSeats([]int{2}); err != nil {
			t.Fatalf("ReserveSeats: %v", err)
		}

		err := v.ReserveSeats([]int{1, 2})
		if !errors.Is(err, ErrSeatAlreadyReserved) {
			t.Fatalf("expected ErrSeatAlreadyReserved, got %v", err)
		}

		s, _ := v.Seat(1)
		if s.Reserved() {
			t.Fatal("seat 1 must not be reserved after a refused batch")
		}
	})
}

func TestLayout(t *testing.T) {
	v := mustVenue(t, 1, 1, 2)
	if err := v.ReserveSeats([]int{1}); err != nil {
		t.Fatalf("ReserveSeats: %v", err)
	}

	layout := v.Layout(testNow)
	if want := "R(1|1.5)"; !strings.Contains(layout, want) {
		t.Errorf("layout missing %q:\n%s", want, layout)
	}
	if want := "A(2|1.5)"; !strings.Contains(layout, want) {
		t.Errorf("layout missing %q:\n%s", want, layout)
	}
}
