package main

import (
	"errors"
	"fbs/src/config"
	"fbs/src/db"
	"fbs/src/lib"
	"fbs/src/models"
	"fbs/src/types"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func adminFlightHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/flights", func(ctx *gin.Context) {
			var flights []models.Flight
			db := db.GetDb()
			if err := db.
				Model(&models.Flight{}).
				Order("scheduled_departure asc").
				Find(&flights).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": flights, "count": len(flights)})
		}).
		POST("/flights", func(ctx *gin.Context) {
			var body types.CreateFlightRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			departure, err := time.Parse(config.TIME_PARSE_FORMAT, body.ScheduledDeparture)
			if err != nil {
				log.Printf("Error parsing scheduled_departure: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			arrival, err := time.Parse(config.TIME_PARSE_FORMAT, body.ScheduledArrival)
			if err != nil {
				log.Printf("Error parsing scheduled_arrival: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			flight := models.Flight{
				Airline:            body.Airline,
				FlightNumber:       body.FlightNumber,
				Origin:             body.Origin,
				Destination:        body.Destination,
				ScheduledDeparture: departure,
				ScheduledArrival:   arrival,
				Terminal:           body.Terminal,
				Gate:               body.Gate,
				Status:             types.FLIGHT_ON_TIME,
				AircraftType:       body.AircraftType,
				EconomyPrice:       body.EconomyPrice,
				BusinessPrice:      body.BusinessPrice,
				FirstClassPrice:    body.FirstClassPrice,
				Seats:              models.GenerateSeats(body.EconomyPrice, body.BusinessPrice, body.FirstClassPrice),
			}
			db := db.GetDb()
			if err := db.Create(&flight).Error; err != nil {
				log.Printf("Error creating flight: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			lib.CacheInvalidate(config.FLIGHTS_CACHE_KEY)
			ctx.JSON(http.StatusCreated, gin.H{"data": flight})
		}).
		PUT("/flights/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateFlightRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			updates := map[string]any{}
			if body.Airline != nil {
				updates["airline"] = *body.Airline
			}
			if body.Origin != nil {
				updates["origin"] = *body.Origin
			}
			if body.Destination != nil {
				updates["destination"] = *body.Destination
			}
			if body.Terminal != nil {
				updates["terminal"] = *body.Terminal
			}
			if body.Gate != nil {
				updates["gate"] = *body.Gate
			}
			if body.Status != nil {
				updates["status"] = *body.Status
			}
			if body.AircraftType != nil {
				updates["aircraft_type"] = *body.AircraftType
			}
			if body.EconomyPrice != nil {
				updates["economy_price"] = *body.EconomyPrice
			}
			if body.BusinessPrice != nil {
				updates["business_price"] = *body.BusinessPrice
			}
			if body.FirstClassPrice != nil {
				updates["first_class_price"] = *body.FirstClassPrice
			}
			for field, value := range map[string]*string{
				"scheduled_departure": body.ScheduledDeparture,
				"scheduled_arrival":   body.ScheduledArrival,
				"actual_departure":    body.ActualDeparture,
				"actual_arrival":      body.ActualArrival,
			} {
				if value == nil {
					continue
				}
				parsed, err := time.Parse(config.TIME_PARSE_FORMAT, *value)
				if err != nil {
					log.Printf("Error parsing %s: %s\n", field, err.Error())
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				updates[field] = parsed
			}
			if len(updates) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
				return
			}

			flightId, _ := uuid.Parse(params.ID)
			db := db.GetDb()
			res := db.
				Model(&models.Flight{}).
				Where(&models.Flight{ID: flightId}).
				Updates(updates)
			if res.Error != nil {
				log.Printf("Error updating flight [%s]: %s\n", params.ID, res.Error.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": res.Error.Error()})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
				return
			}
			lib.CacheInvalidate(config.FLIGHTS_CACHE_KEY)
			ctx.Status(http.StatusNoContent)
		}).
		DELETE("/flights/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			flightId, _ := uuid.Parse(params.ID)
			// Bookings keep their own flight snapshot; deleting a flight
			// does not cascade to them.
			db := db.GetDb()
			if err := db.
				Where(&models.Flight{ID: flightId}).
				Delete(&models.Flight{}).
				Error; err != nil {
				log.Printf("Error deleting flight [%s]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			lib.CacheInvalidate(config.FLIGHTS_CACHE_KEY)
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func adminAirportHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/airports", func(ctx *gin.Context) {
			var body types.CreateAirportRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			airport := models.Airport{
				Code:      body.Code,
				Name:      body.Name,
				City:      body.City,
				Country:   body.Country,
				Latitude:  body.Latitude,
				Longitude: body.Longitude,
			}
			db := db.GetDb()
			if err := db.Create(&airport).Error; err != nil {
				log.Printf("Error creating airport: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": airport})
		}).
		PUT("/airports/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateAirportRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{}
			if body.Name != nil {
				updates["name"] = *body.Name
			}
			if body.City != nil {
				updates["city"] = *body.City
			}
			if body.Country != nil {
				updates["country"] = *body.Country
			}
			if body.Latitude != nil {
				updates["latitude"] = *body.Latitude
			}
			if body.Longitude != nil {
				updates["longitude"] = *body.Longitude
			}
			if len(updates) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
				return
			}
			airportId, _ := uuid.Parse(params.ID)
			db := db.GetDb()
			res := db.
				Model(&models.Airport{}).
				Where(&models.Airport{ID: airportId}).
				Updates(updates)
			if res.Error != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": res.Error.Error()})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "airport not found"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func adminBookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings", func(ctx *gin.Context) {
			var bookings []models.Booking
			db := db.GetDb()
			if err := db.
				Model(&models.Booking{}).
				Order("created_at desc").
				Find(&bookings).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			bookingId, _ := uuid.Parse(params.ID)
			var booking models.Booking
			db := db.GetDb()
			if err := db.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: bookingId}).
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		DELETE("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			bookingId, _ := uuid.Parse(params.ID)
			// Seats stay Booked on the flight: no release flow exists.
			db := db.GetDb()
			if err := db.
				Where(&models.Booking{ID: bookingId}).
				Delete(&models.Booking{}).
				Error; err != nil {
				log.Printf("Error deleting booking [%s]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func adminPlanRequestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/plan-requests", func(ctx *gin.Context) {
			var requests []models.PlanRequest
			db := db.GetDb()
			if err := db.
				Model(&models.PlanRequest{}).
				Order("created_at desc").
				Find(&requests).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": requests, "count": len(requests)})
		}).
		PUT("/plan-requests/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdatePlanRequestStatusBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			requestId, _ := uuid.Parse(params.ID)
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var request models.PlanRequest
				if err := tx.
					Model(&models.PlanRequest{}).
					Where(&models.PlanRequest{ID: requestId}).
					First(&request).
					Error; err != nil {
					return err
				}
				if !request.CanAdvanceTo(body.Status) {
					return errors.New("status can only move forward")
				}
				return tx.
					Model(&models.PlanRequest{}).
					Where(&models.PlanRequest{ID: requestId}).
					Update("status", body.Status).
					Error
			})
			if err != nil {
				log.Printf("Could not update plan request [%s]: %s\n", params.ID, err.Error())
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "plan request not found"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func adminNotificationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/notifications", func(ctx *gin.Context) {
			var notifications []models.Notification
			db := db.GetDb()
			if err := db.
				Model(&models.Notification{}).
				Order("created_at desc").
				Limit(100).
				Find(&notifications).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": notifications, "count": len(notifications)})
		}).
		PUT("/notifications/:id/read", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			notificationId, _ := uuid.Parse(params.ID)
			db := db.GetDb()
			if err := db.
				Model(&models.Notification{}).
				Where(&models.Notification{ID: notificationId}).
				Update("read", true).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
