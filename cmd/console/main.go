// Command console is an interactive terminal client for the seat
// allocator. It drives the ticketing service in-process: browse
// availability, hold seats, reserve a hold, print the seat map.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"boxoffice/internal/shared/clock"
	"boxoffice/internal/shared/config"
	"boxoffice/internal/ticketing"
	"boxoffice/internal/venue"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	v, err := venue.New(cfg.Venue.ID, cfg.Venue.Rows, cfg.Venue.SeatsPerRow)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid venue configuration:", err)
		os.Exit(1)
	}
	service := ticketing.NewService(v, clock.NewSystem(), cfg.Hold.Timeout)

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n1.Seat Availability  2.Hold Seats  3.Reserve Seats  4.Print Seats  5.Exit")

		switch readInt(reader, "Choose an option: ") {
		case 1:
			fmt.Println("Number of seats available:", service.NumSeatsAvailable())

		case 2:
			email := readLine(reader, "Enter your email: ")
			numSeats := readInt(reader, "Enter number of seats to hold: ")

			hold, err := service.FindAndHoldSeats(numSeats, email)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("Your SeatHold ID:", hold.ID)
			fmt.Println("Held seats:", hold.SeatIDs)
			fmt.Print(service.SeatMap())

		case 3:
			email := readLine(reader, "Enter your email: ")
			holdID := readInt(reader, "Enter SeatHold ID: ")

			code, err := service.ReserveSeats(holdID, email)
			if err != nil {
				if errors.Is(err, ticketing.ErrHoldExpired) {
					fmt.Println("That hold has expired; the seats are back on the market.")
				} else {
					fmt.Println(err)
				}
				continue
			}
			fmt.Println("Reservation Code:", code)
			fmt.Print(service.SeatMap())

		case 4:
			fmt.Print(service.SeatMap())

		case 5:
			return

		default:
			fmt.Println("Please choose an option between 1 and 5.")
		}
	}
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

func readInt(reader *bufio.Reader, prompt string) int {
	for {
		line := readLine(reader, prompt)
		n, err := strconv.Atoi(line)
		if err == nil {
			return n
		}
		fmt.Println("Please enter a number.")
	}
}
