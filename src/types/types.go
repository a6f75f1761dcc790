package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any
type StringArray []string

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

func (a StringArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *StringArray) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type FlightStatus string

const (
	FLIGHT_ON_TIME   FlightStatus = "On Time"
	FLIGHT_DELAYED   FlightStatus = "Delayed"
	FLIGHT_CANCELLED FlightStatus = "Cancelled"
	FLIGHT_BOARDING  FlightStatus = "Boarding"
	FLIGHT_IN_FLIGHT FlightStatus = "In Flight"
	FLIGHT_LANDED    FlightStatus = "Landed"
)

type SeatClass string

const (
	SEAT_ECONOMY     SeatClass = "Economy"
	SEAT_BUSINESS    SeatClass = "Business"
	SEAT_FIRST_CLASS SeatClass = "First Class"
)

type SeatStatus string

const (
	SEAT_AVAILABLE SeatStatus = "Available"
	SEAT_BOOKED    SeatStatus = "Booked"
)

type PlanRequestStatus string

const (
	PLAN_REQUEST_PENDING   PlanRequestStatus = "pending"
	PLAN_REQUEST_CONTACTED PlanRequestStatus = "contacted"
	PLAN_REQUEST_COMPLETED PlanRequestStatus = "completed"
)

type SearchFlightsQuery struct {
	Type         string `form:"type" binding:"required,oneof=route number"`
	Origin       string `form:"origin" binding:"omitempty,iatacode"`
	Destination  string `form:"destination" binding:"omitempty,iatacode"`
	FlightNumber string `form:"flight_number"`
}

type CreateFlightRequestBody struct {
	Airline            string  `json:"airline" binding:"required"`
	FlightNumber       string  `json:"flight_number" binding:"required"`
	Origin             string  `json:"origin" binding:"required,iatacode"`
	Destination        string  `json:"destination" binding:"required,iatacode"`
	ScheduledDeparture string  `json:"scheduled_departure" binding:"required,futuredate" time_format:"2006-01-02 15:04:05 -07:00"`
	ScheduledArrival   string  `json:"scheduled_arrival" binding:"required,gtdate=ScheduledDeparture" time_format:"2006-01-02 15:04:05 -07:00"`
	Terminal           string  `json:"terminal,omitempty"`
	Gate               string  `json:"gate,omitempty"`
	AircraftType       string  `json:"aircraft_type,omitempty"`
	EconomyPrice       float32 `json:"economy_price" binding:"required,gt=0"`
	BusinessPrice      float32 `json:"business_price" binding:"required,gt=0"`
	FirstClassPrice    float32 `json:"first_class_price" binding:"required,gt=0"`
}

type UpdateFlightRequestBody struct {
	Airline            *string       `json:"airline,omitempty"`
	Origin             *string       `json:"origin,omitempty" binding:"omitempty,iatacode"`
	Destination        *string       `json:"destination,omitempty" binding:"omitempty,iatacode"`
	ScheduledDeparture *string       `json:"scheduled_departure,omitempty"`
	ScheduledArrival   *string       `json:"scheduled_arrival,omitempty"`
	ActualDeparture    *string       `json:"actual_departure,omitempty"`
	ActualArrival      *string       `json:"actual_arrival,omitempty"`
	Terminal           *string       `json:"terminal,omitempty"`
	Gate               *string       `json:"gate,omitempty"`
	Status             *FlightStatus `json:"status,omitempty" binding:"omitempty,oneof='On Time' Delayed Cancelled Boarding 'In Flight' Landed"`
	AircraftType       *string       `json:"aircraft_type,omitempty"`
	EconomyPrice       *float32      `json:"economy_price,omitempty" binding:"omitempty,gt=0"`
	BusinessPrice      *float32      `json:"business_price,omitempty" binding:"omitempty,gt=0"`
	FirstClassPrice    *float32      `json:"first_class_price,omitempty" binding:"omitempty,gt=0"`
}

type CreateBookingRequestBody struct {
	FlightID    string    `json:"flight" binding:"required,uuid"`
	FullName    string    `json:"full_name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Passengers  uint8     `json:"passengers" binding:"required,min=1"`
	SeatClass   SeatClass `json:"seat_class" binding:"required,oneof=Economy Business 'First Class'"`
	SeatNumbers []string  `json:"seat_numbers" binding:"required,min=1"`
}

type SeatQuoteRequestBody struct {
	SeatNumbers []string `json:"seat_numbers" binding:"required"`
}

type CreateAirportRequestBody struct {
	Code      string  `json:"code" binding:"required,iatacode"`
	Name      string  `json:"name" binding:"required"`
	City      string  `json:"city" binding:"required"`
	Country   string  `json:"country" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

type UpdateAirportRequestBody struct {
	Name      *string  `json:"name,omitempty"`
	City      *string  `json:"city,omitempty"`
	Country   *string  `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
}

type CreatePlanRequestBody struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Destination     string   `json:"destination" binding:"required"`
	StartDate       string   `json:"start_date" binding:"required"`
	EndDate         string   `json:"end_date" binding:"required"`
	Budget          string   `json:"budget,omitempty"`
	Preferences     []string `json:"preferences,omitempty"`
	AdditionalNotes string   `json:"additional_notes,omitempty"`
}

type UpdatePlanRequestStatusBody struct {
	Status PlanRequestStatus `json:"status" binding:"required,oneof=contacted completed"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterAdminRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type PNRRequestParams struct {
	PNR string `uri:"pnr" binding:"required"`
}

type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)
