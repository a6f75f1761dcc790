package models

import (
	"fbs/src/types"

	"github.com/google/uuid"
)

type Booking struct {
	ID           uuid.UUID         `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	PNR          string            `gorm:"index" json:"pnr"`
	FullName     string            `json:"full_name"`
	Email        string            `json:"email"`
	FlightNumber string            `gorm:"index" json:"flight_number"`
	Passengers   uint8             `json:"passengers"`
	SeatClass    types.SeatClass   `json:"seat_class"`
	SeatNumbers  types.StringArray `gorm:"type:jsonb" json:"seat_numbers"`
	Price        float32           `json:"price"`
	Flight       FlightSnapshot    `gorm:"type:jsonb" json:"flight"`

	types.Timestamps
}
