package common

import (
	"context"
	"encoding/json"
	"errors"
	"fbs/src/config"
	"fbs/src/db"
	"fbs/src/lib"
	"fbs/src/models"
	"fbs/src/types"
	"fmt"
	"log"
	"math"
	"strings"
	"time"
)

var (
	ErrSeatNotFound      = errors.New("seat does not exist on this flight")
	ErrSeatUnavailable   = errors.New("seat is already booked")
	ErrSeatClassMismatch = errors.New("seat does not match the selected class")
	ErrSeatCountMismatch = errors.New("selected seats must match the number of passengers")
)

// AvailableSeats returns the seats with status Available and matching class,
// in seat-map order.
func AvailableSeats(seats models.SeatList, class types.SeatClass) models.SeatList {
	out := models.SeatList{}
	for _, seat := range seats {
		if seat.Status == types.SEAT_AVAILABLE && seat.Class == class {
			out = append(out, seat)
		}
	}
	return out
}

// SelectionPrice sums the individual price of every selected seat. There is
// no flat class price and no rounding: the total is always an exact sum.
func SelectionPrice(seats models.SeatList, numbers []string) (float32, error) {
	byNumber := map[string]models.Seat{}
	for _, seat := range seats {
		byNumber[seat.Number] = seat
	}
	var total float32
	for _, number := range numbers {
		seat, ok := byNumber[number]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrSeatNotFound, number)
		}
		total += seat.Price
	}
	return total, nil
}

// ValidateSelection enforces the submission rules: seat count equals the
// declared passenger count, no duplicates, and every seat exists, is
// Available and belongs to the declared class.
func ValidateSelection(seats models.SeatList, numbers []string, class types.SeatClass, passengers uint8) error {
	if len(numbers) != int(passengers) {
		return ErrSeatCountMismatch
	}
	byNumber := map[string]models.Seat{}
	for _, seat := range seats {
		byNumber[seat.Number] = seat
	}
	seen := map[string]bool{}
	for _, number := range numbers {
		if seen[number] {
			return fmt.Errorf("duplicate seat in selection: %s", number)
		}
		seen[number] = true
		seat, ok := byNumber[number]
		if !ok {
			return fmt.Errorf("%w: %s", ErrSeatNotFound, number)
		}
		if seat.Status != types.SEAT_AVAILABLE {
			return fmt.Errorf("%w: %s", ErrSeatUnavailable, number)
		}
		if seat.Class != class {
			return fmt.Errorf("%w: %s", ErrSeatClassMismatch, number)
		}
	}
	return nil
}

// MarkSeats returns a copy of the seat list with the given seats set to
// status. Seats not in the selection are returned unchanged.
func MarkSeats(seats models.SeatList, numbers []string, status types.SeatStatus) models.SeatList {
	selected := map[string]bool{}
	for _, number := range numbers {
		selected[number] = true
	}
	out := make(models.SeatList, 0, len(seats))
	for _, seat := range seats {
		if selected[seat.Number] {
			seat.Status = status
		}
		out = append(out, seat)
	}
	return out
}

// SearchFlights filters a flight list by route or flight number, the way the
// public search page does.
func SearchFlights(flights []models.Flight, params *types.SearchFlightsQuery) []models.Flight {
	out := []models.Flight{}
	for _, flight := range flights {
		switch params.Type {
		case "route":
			if strings.EqualFold(flight.Origin, params.Origin) &&
				strings.EqualFold(flight.Destination, params.Destination) {
				out = append(out, flight)
			}
		case "number":
			if strings.EqualFold(flight.FlightNumber, params.FlightNumber) {
				out = append(out, flight)
			}
		}
	}
	return out
}

// FlightProgress interpolates elapsed schedule time into a 0-100 percentage,
// clamped at the boundaries. Pure function of the wall clock, no state.
func FlightProgress(flight *models.Flight, now time.Time) float64 {
	total := flight.ScheduledArrival.Sub(flight.ScheduledDeparture)
	if total <= 0 {
		return 0
	}
	elapsed := now.Sub(flight.ScheduledDeparture)
	progress := float64(elapsed) / float64(total) * 100
	return math.Max(0, math.Min(100, progress))
}

// InterpolatePosition places the aircraft on the straight line between the
// two airports by the progress fraction. A display approximation, not a
// tracked position feed.
func InterpolatePosition(originLat, originLng, destLat, destLng, progress float64) (float64, float64) {
	fraction := progress / 100
	lat := originLat + (destLat-originLat)*fraction
	lng := originLng + (destLng-originLng)*fraction
	return lat, lng
}

// Bearing computes the forward azimuth from origin to destination in degrees.
func Bearing(originLat, originLng, destLat, destLng float64) float64 {
	startLat := originLat * math.Pi / 180
	startLng := originLng * math.Pi / 180
	endLat := destLat * math.Pi / 180
	endLng := destLng * math.Pi / 180

	dLng := endLng - startLng
	y := math.Sin(dLng) * math.Cos(endLat)
	x := math.Cos(startLat)*math.Sin(endLat) - math.Sin(startLat)*math.Cos(endLat)*math.Cos(dLng)

	return math.Mod(math.Atan2(y, x)*180/math.Pi+360, 360)
}

// TimeRemaining renders the countdown label for the status board.
func TimeRemaining(flight *models.Flight, now time.Time) string {
	departure := flight.ScheduledDeparture
	arrival := flight.ScheduledArrival
	if now.Before(departure) {
		d := departure.Sub(now)
		return fmt.Sprintf("Departs in %dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if now.Before(arrival) {
		d := arrival.Sub(now)
		return fmt.Sprintf("Lands in %dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	return "Landed"
}

// ListFlights reads the public flight list through the redis cache. The blob
// is overwritten on every admin mutation and warmed by the scheduler, so a
// miss just falls back to the database.
func ListFlights(ctx context.Context) ([]models.Flight, error) {
	rd := lib.GetRedisClient()
	if rd != nil {
		val, err := rd.Get(ctx, config.FLIGHTS_CACHE_KEY).Result()
		if err == nil && val != "" {
			var cached []models.Flight
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			} else {
				log.Printf("Error decoding cached flights: %s\n", err.Error())
			}
		}
	}

	var flights []models.Flight
	d := db.GetDb()
	if err := d.
		Model(&models.Flight{}).
		Order("scheduled_departure asc").
		Find(&flights).
		Error; err != nil {
		return nil, err
	}

	if rd != nil {
		if blob, err := json.Marshal(flights); err == nil {
			if err := rd.Set(ctx, config.FLIGHTS_CACHE_KEY, blob, 5*time.Minute).Err(); err != nil {
				log.Printf("Error caching flights: %s\n", err.Error())
			}
		}
	}

	return flights, nil
}
