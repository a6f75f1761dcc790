package main

import (
	"errors"
	"fbs/src/common"
	"fbs/src/db"
	"fbs/src/models"
	"fbs/src/types"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func getFlight(id string) (*models.Flight, error) {
	flightId, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	var flight models.Flight
	db := db.GetDb()
	if err := db.
		Model(&models.Flight{}).
		Where(&models.Flight{ID: flightId}).
		First(&flight).
		Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

func flightHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/flights", func(ctx *gin.Context) {
			flights, err := common.ListFlights(ctx)
			if err != nil {
				log.Printf("Error retrieving flights: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": flights, "count": len(flights)})
		}).
		GET("/flights/search", func(ctx *gin.Context) {
			var params types.SearchFlightsQuery
			if err := ctx.ShouldBindQuery(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if params.Type == "route" && (params.Origin == "" || params.Destination == "") {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "route search requires origin and destination"})
				return
			}
			if params.Type == "number" && params.FlightNumber == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "number search requires flight_number"})
				return
			}
			flights, err := common.ListFlights(ctx)
			if err != nil {
				log.Printf("Error retrieving flights: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			matches := common.SearchFlights(flights, &params)
			if len(matches) == 0 {
				ctx.JSON(http.StatusOK, gin.H{"data": matches, "count": 0, "message": "no flights found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": matches, "count": len(matches)})
		}).
		GET("/flights/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			flight, err := getFlight(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": flight})
		}).
		GET("/flights/:id/seats", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			flight, err := getFlight(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			class := types.SeatClass(ctx.Query("class"))
			if class == "" {
				ctx.JSON(http.StatusOK, gin.H{"data": flight.Seats, "count": len(flight.Seats)})
				return
			}
			available := common.AvailableSeats(flight.Seats, class)
			ctx.JSON(http.StatusOK, gin.H{"data": available, "count": len(available)})
		}).
		POST("/flights/:id/quote", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.SeatQuoteRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			flight, err := getFlight(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			total, err := common.SelectionPrice(flight.Seats, body.SeatNumbers)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{
				"seat_numbers": body.SeatNumbers,
				"total_price":  total,
			}})
		}).
		GET("/flights/:id/track", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			flight, err := getFlight(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			now := time.Now()
			progress := common.FlightProgress(flight, now)
			track := gin.H{
				"flight_number":  flight.FlightNumber,
				"status":         flight.Status,
				"progress":       progress,
				"time_remaining": common.TimeRemaining(flight, now),
			}

			db := db.GetDb()
			var origin, destination models.Airport
			originErr := db.Where(&models.Airport{Code: flight.Origin}).First(&origin).Error
			destErr := db.Where(&models.Airport{Code: flight.Destination}).First(&destination).Error
			if originErr == nil && destErr == nil {
				lat, lng := common.InterpolatePosition(
					origin.Latitude, origin.Longitude,
					destination.Latitude, destination.Longitude,
					progress,
				)
				track["position"] = gin.H{"latitude": lat, "longitude": lng}
				track["bearing"] = common.Bearing(origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)
			} else {
				log.Printf("Airport coordinates unavailable for %s-%s\n", flight.Origin, flight.Destination)
			}

			ctx.JSON(http.StatusOK, gin.H{"data": track})
		})
	return g
}
