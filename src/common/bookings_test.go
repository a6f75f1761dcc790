package common

import (
	"encoding/json"
	"fbs/src/db"
	"fbs/src/models"
	"fbs/src/types"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqldb}), &gorm.Config{})
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	db.NewDB(gormDB)
	return mock
}

func mockFlightRow(t *testing.T, id uuid.UUID, seats models.SeatList) *sqlmock.Rows {
	blob, err := json.Marshal(seats)
	assert.Nil(t, err)
	departure := time.Now().Add(24 * time.Hour)
	return sqlmock.NewRows([]string{
		"id", "airline", "flight_number", "origin", "destination",
		"scheduled_departure", "scheduled_arrival", "status", "seats",
	}).AddRow(
		id.String(), "Delta", "DL100", "JFK", "LAX",
		departure, departure.Add(6*time.Hour), "On Time", blob,
	)
}

// The guard read must lock the flight row, so a concurrent submission for
// the same seat waits on the transaction and then fails validation.
const lockedFlightSelect = `SELECT (.+) FROM "flights" (.+)FOR UPDATE`

func TestCreateBooking(t *testing.T) {
	mock := newMockDB(t)
	flightId := uuid.New()
	seats := models.SeatList{
		{ID: "8A", Number: "8A", Class: types.SEAT_ECONOMY, Status: types.SEAT_AVAILABLE, Price: 199},
		{ID: "8B", Number: "8B", Class: types.SEAT_ECONOMY, Status: types.SEAT_AVAILABLE, Price: 199},
		{ID: "8C", Number: "8C", Class: types.SEAT_ECONOMY, Status: types.SEAT_BOOKED, Price: 199},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(lockedFlightSelect).WillReturnRows(mockFlightRow(t, flightId, seats))
	mock.ExpectExec(`UPDATE "flights" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	booking, err := CreateBooking(&types.CreateBookingRequestBody{
		FlightID:    flightId.String(),
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Passengers:  2,
		SeatClass:   types.SEAT_ECONOMY,
		SeatNumbers: []string{"8A", "8B"},
	})
	assert.Nil(t, err)
	assert.Regexp(t, `^PNR-[A-Z0-9]{6}$`, booking.PNR)
	assert.Equal(t, float32(398), booking.Price)
	assert.Equal(t, "DL100", booking.FlightNumber)
	assert.Equal(t, types.StringArray{"8A", "8B"}, booking.SeatNumbers)

	// The snapshot is the flight as read inside the transaction, with the
	// selection already marked Booked.
	assert.Equal(t, flightId, booking.Flight.ID)
	assert.Equal(t, "Delta", booking.Flight.Airline)
	assert.Equal(t, "JFK", booking.Flight.Origin)
	assert.Equal(t, "LAX", booking.Flight.Destination)
	for _, seat := range booking.Flight.Seats {
		assert.Equal(t, types.SEAT_BOOKED, seat.Status)
	}

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRejectsBookedSeat(t *testing.T) {
	mock := newMockDB(t)
	flightId := uuid.New()
	seats := models.SeatList{
		{ID: "8A", Number: "8A", Class: types.SEAT_ECONOMY, Status: types.SEAT_BOOKED, Price: 199},
		{ID: "8B", Number: "8B", Class: types.SEAT_ECONOMY, Status: types.SEAT_AVAILABLE, Price: 199},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(lockedFlightSelect).WillReturnRows(mockFlightRow(t, flightId, seats))
	mock.ExpectRollback()

	_, err := CreateBooking(&types.CreateBookingRequestBody{
		FlightID:    flightId.String(),
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Passengers:  1,
		SeatClass:   types.SEAT_ECONOMY,
		SeatNumbers: []string{"8A"},
	})
	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRejectsCancelledFlight(t *testing.T) {
	mock := newMockDB(t)
	flightId := uuid.New()
	blob, _ := json.Marshal(models.SeatList{})
	departure := time.Now().Add(24 * time.Hour)
	rows := sqlmock.NewRows([]string{"id", "flight_number", "scheduled_departure", "status", "seats"}).
		AddRow(flightId.String(), "DL100", departure, "Cancelled", blob)

	mock.ExpectBegin()
	mock.ExpectQuery(lockedFlightSelect).WillReturnRows(rows)
	mock.ExpectRollback()

	_, err := CreateBooking(&types.CreateBookingRequestBody{
		FlightID:    flightId.String(),
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Passengers:  1,
		SeatClass:   types.SEAT_ECONOMY,
		SeatNumbers: []string{"8A"},
	})
	assert.NotNil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}
