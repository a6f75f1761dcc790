package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fbs/src/types"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Seat struct {
	ID     string           `json:"id"`
	Number string           `json:"number"`
	Class  types.SeatClass  `json:"class"`
	Status types.SeatStatus `json:"status"`
	Price  float32          `json:"price"`
}

// SeatList is stored as a single jsonb document on the flight row, keeping
// the seat map owned exclusively by its flight.
type SeatList []Seat

func (s SeatList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(s)
	return string(valueString), err
}
func (s *SeatList) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return nil
}

type Flight struct {
	ID                 uuid.UUID          `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	Airline            string             `json:"airline"`
	FlightNumber       string             `gorm:"index" json:"flight_number"`
	Origin             string             `gorm:"index" json:"origin"`
	Destination        string             `gorm:"index" json:"destination"`
	ScheduledDeparture time.Time          `json:"scheduled_departure"`
	ActualDeparture    *time.Time         `json:"actual_departure,omitempty"`
	ScheduledArrival   time.Time          `json:"scheduled_arrival"`
	ActualArrival      *time.Time         `json:"actual_arrival,omitempty"`
	Terminal           string             `json:"terminal,omitempty"`
	Gate               string             `json:"gate,omitempty"`
	Status             types.FlightStatus `gorm:"default:'On Time'" json:"status"`
	AircraftType       string             `json:"aircraft_type,omitempty"`
	EconomyPrice       float32            `json:"economy_price"`
	BusinessPrice      float32            `json:"business_price"`
	FirstClassPrice    float32            `json:"first_class_price"`
	Seats              SeatList           `gorm:"type:jsonb" json:"seats,omitempty"`

	types.Timestamps
}

// FlightSnapshot is the point-in-time copy of a flight embedded in a booking.
// Later edits to the live flight row never touch it.
type FlightSnapshot Flight

func (s FlightSnapshot) Value() (driver.Value, error) {
	valueString, err := json.Marshal(s)
	return string(valueString), err
}
func (s *FlightSnapshot) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return nil
}

var firstClassColumns = []string{"A", "C", "D", "F"}
var businessColumns = []string{"A", "C", "D", "F"}
var economyColumns = []string{"A", "B", "C", "D", "E", "F"}

// GenerateSeats builds the full seat map for a new flight from the three
// cabin price points. The class-to-row mapping is fixed at generation:
// First rows 1-2, Business rows 3-7, Economy rows 8-32.
func GenerateSeats(economyPrice, businessPrice, firstClassPrice float32) SeatList {
	seats := SeatList{}

	for row := 1; row <= 2; row++ {
		for _, col := range firstClassColumns {
			number := fmt.Sprintf("%d%s", row, col)
			seats = append(seats, Seat{
				ID:     number,
				Number: number,
				Class:  types.SEAT_FIRST_CLASS,
				Status: types.SEAT_AVAILABLE,
				Price:  firstClassPrice,
			})
		}
	}

	for row := 3; row <= 7; row++ {
		for _, col := range businessColumns {
			number := fmt.Sprintf("%d%s", row, col)
			seats = append(seats, Seat{
				ID:     number,
				Number: number,
				Class:  types.SEAT_BUSINESS,
				Status: types.SEAT_AVAILABLE,
				Price:  businessPrice,
			})
		}
	}

	for row := 8; row <= 32; row++ {
		for _, col := range economyColumns {
			number := fmt.Sprintf("%d%s", row, col)
			seats = append(seats, Seat{
				ID:     number,
				Number: number,
				Class:  types.SEAT_ECONOMY,
				Status: types.SEAT_AVAILABLE,
				Price:  economyPrice,
			})
		}
	}

	return seats
}
