package common

import (
	"fbs/src/config"
	"fbs/src/db"
	"fbs/src/lib"
	"fbs/src/models"
	"fbs/src/types"
	"fbs/src/utils"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateBooking runs the whole submission in one transaction: re-read the
// flight row, reject any seat that is gone or mismatched, then write the
// booking and the updated seat document together. Two concurrent submissions
// for the same seat cannot both commit.
func CreateBooking(params *types.CreateBookingRequestBody) (*models.Booking, error) {
	flightId, err := uuid.Parse(params.FlightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight id: %w", err)
	}

	var booking models.Booking
	d := db.GetDb()
	err = d.Transaction(func(tx *gorm.DB) error {
		// Lock the flight row so a concurrent submission for the same seat
		// waits here and then fails validation against the committed list.
		var flight models.Flight
		if err := tx.
			Clauses(clause.Locking{
				Strength: "UPDATE",
				Table:    clause.Table{Name: clause.CurrentTable},
			}).
			Model(&models.Flight{}).
			Where(&models.Flight{ID: flightId}).
			First(&flight).
			Error; err != nil {
			return err
		}
		if flight.Status == types.FLIGHT_CANCELLED {
			return fmt.Errorf("flight %s is cancelled", flight.FlightNumber)
		}

		if err := ValidateSelection(flight.Seats, params.SeatNumbers, params.SeatClass, params.Passengers); err != nil {
			return err
		}
		price, err := SelectionPrice(flight.Seats, params.SeatNumbers)
		if err != nil {
			return err
		}

		flight.Seats = MarkSeats(flight.Seats, params.SeatNumbers, types.SEAT_BOOKED)
		if err := tx.
			Model(&models.Flight{}).
			Where(&models.Flight{ID: flightId}).
			Update("seats", flight.Seats).
			Error; err != nil {
			return err
		}

		booking = models.Booking{
			PNR:          utils.GeneratePNR(),
			FullName:     params.FullName,
			Email:        params.Email,
			FlightNumber: flight.FlightNumber,
			Passengers:   params.Passengers,
			SeatClass:    params.SeatClass,
			SeatNumbers:  types.StringArray(params.SeatNumbers),
			Price:        price,
			Flight:       models.FlightSnapshot(flight),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		notification := models.Notification{
			Title:          "New booking",
			ReferenceType:  "booking",
			ReferenceValue: booking.PNR,
			ReferenceBody: &types.JSONB{
				"pnr":           booking.PNR,
				"flight_number": booking.FlightNumber,
				"passengers":    booking.Passengers,
				"price":         booking.Price,
			},
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	lib.CacheInvalidate(config.FLIGHTS_CACHE_KEY)
	go BookingCreatedProducer(&booking)

	return &booking, nil
}

// BookingCreatedProducer publishes the booking to the bookings topic.
// Best effort, failures are logged only.
func BookingCreatedProducer(booking *models.Booking) {
	payload := map[string]any{
		"pnr":           booking.PNR,
		"flight_number": booking.FlightNumber,
		"seat_class":    string(booking.SeatClass),
		"seat_numbers":  booking.SeatNumbers,
		"passengers":    booking.Passengers,
		"price":         booking.Price,
	}
	if err := lib.KafkaProduceMessage("bookings_created_producer", "bookings-created", payload); err != nil {
		log.Printf("Error on producing message: %s\n", err.Error())
	}
}

// PlanRequestCreatedProducer publishes a new vacation plan lead.
func PlanRequestCreatedProducer(request *models.PlanRequest) {
	payload := map[string]any{
		"id":          request.ID.String(),
		"destination": request.Destination,
		"email":       request.Email,
	}
	if err := lib.KafkaProduceMessage("plan_requests_producer", "plan-requests-created", payload); err != nil {
		log.Printf("Error on producing message: %s\n", err.Error())
	}
}
