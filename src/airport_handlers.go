package main

import (
	"fbs/src/db"
	"fbs/src/models"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func airportHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/airports", func(ctx *gin.Context) {
			var airports []models.Airport
			db := db.GetDb()
			if err := db.
				Model(&models.Airport{}).
				Order("code asc").
				Find(&airports).
				Error; err != nil {
				log.Printf("Error retrieving airports: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": airports, "count": len(airports)})
		})
	return g
}
