package mailer

import (
	"fbs/src/lib"
	"fbs/src/models"
	"fmt"
	"os"
	"strings"
	"time"
)

// SendBookingConfirmation delivers the receipt email for a completed booking.
// Best effort: the caller logs failures and moves on, the booking itself is
// already persisted.
func SendBookingConfirmation(booking *models.Booking) error {
	from := os.Getenv("MAIL_FROM")
	fromName := os.Getenv("MAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Flight Bookings"
	}

	params := map[string]string{
		"to_email":       booking.Email,
		"to_name":        booking.FullName,
		"booking_id":     booking.PNR,
		"flight_number":  booking.FlightNumber,
		"origin":         booking.Flight.Origin,
		"destination":    booking.Flight.Destination,
		"departure_time": booking.Flight.ScheduledDeparture.Format(time.RFC1123),
		"arrival_time":   booking.Flight.ScheduledArrival.Format(time.RFC1123),
		"seat_class":     string(booking.SeatClass),
		"seats":          strings.Join(booking.SeatNumbers, ", "),
		"passengers":     fmt.Sprintf("%d", booking.Passengers),
		"total_price":    fmt.Sprintf("%.2f", booking.Price),
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hi %s,\n\n", params["to_name"]))
	sb.WriteString(fmt.Sprintf("Your booking %s is confirmed.\n\n", params["booking_id"]))
	sb.WriteString(fmt.Sprintf("Flight %s %s -> %s\n", params["flight_number"], params["origin"], params["destination"]))
	sb.WriteString(fmt.Sprintf("Departs: %s\n", params["departure_time"]))
	sb.WriteString(fmt.Sprintf("Arrives: %s\n", params["arrival_time"]))
	sb.WriteString(fmt.Sprintf("Class: %s, Seats: %s, Passengers: %s\n", params["seat_class"], params["seats"], params["passengers"]))
	sb.WriteString(fmt.Sprintf("Total: $%s\n\n", params["total_price"]))
	sb.WriteString("Safe travels!\n")

	return lib.SendMail(&lib.SendMailInput{
		From:     from,
		FromName: fromName,
		To:       []string{booking.Email},
		Subject:  fmt.Sprintf("Booking confirmation %s", booking.PNR),
		Body:     sb.String(),
	})
}
