package models

import (
	"fbs/src/types"

	"github.com/google/uuid"
)

type Airport struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	Code      string    `gorm:"uniqueIndex" json:"code"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`

	types.Timestamps
}
