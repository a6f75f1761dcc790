package main

import (
	"errors"
	"fbs/src/common"
	"fbs/src/db"
	"fbs/src/lib/mailer"
	"fbs/src/models"
	"fbs/src/types"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/yeqown/go-qrcode"
	"gorm.io/gorm"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			body.FullName = strings.TrimSpace(body.FullName)
			body.Email = strings.TrimSpace(body.Email)
			if body.FullName == "" || body.Email == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
				return
			}
			// Reject before touching the database.
			if len(body.SeatNumbers) != int(body.Passengers) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": common.ErrSeatCountMismatch.Error()})
				return
			}

			booking, err := common.CreateBooking(&body)
			if err != nil {
				log.Printf("Could not complete booking: %s\n", err.Error())
				switch {
				case errors.Is(err, gorm.ErrRecordNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
				case errors.Is(err, common.ErrSeatUnavailable):
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				default:
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				}
				return
			}

			// Best effort: the booking is already persisted, a failed email
			// is reported but never retried (and never rolls anything back).
			emailSent := true
			if err := mailer.SendBookingConfirmation(booking); err != nil {
				log.Printf("Error sending confirmation email for %s: %s\n", booking.PNR, err.Error())
				emailSent = false
			}

			ctx.JSON(http.StatusCreated, gin.H{"data": booking, "email_sent": emailSent})
		}).
		GET("/bookings/:pnr", func(ctx *gin.Context) {
			var params types.PNRRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var booking models.Booking
			db := db.GetDb()
			if err := db.
				Model(&models.Booking{}).
				Where(&models.Booking{PNR: params.PNR}).
				First(&booking).
				Error; err != nil {
				log.Printf("Error retrieving booking [%s]: %s\n", params.PNR, err.Error())
				ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		GET("/bookings/:pnr/pass", func(ctx *gin.Context) {
			var params types.PNRRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var booking models.Booking
			db := db.GetDb()
			if err := db.
				Model(&models.Booking{}).
				Where(&models.Booking{PNR: params.PNR}).
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}

			qrc, err := qrcode.New(booking.PNR)
			if err != nil {
				log.Printf("Error generating boarding pass for %s: %s\n", booking.PNR, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate boarding pass"})
				return
			}
			filename := fmt.Sprintf("%s.jpeg", slug.Make(fmt.Sprintf("%s %s", booking.FullName, booking.PNR)))
			filepath := path.Join(os.TempDir(), filename)
			if err := qrc.Save(filepath); err != nil {
				log.Printf("Could not save qrcode to file [%s]: %s\n", filepath, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate boarding pass"})
				return
			}
			ctx.FileAttachment(filepath, "boarding-pass.jpeg")
		})
	return g
}
