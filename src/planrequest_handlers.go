package main

import (
	"fbs/src/common"
	"fbs/src/db"
	"fbs/src/models"
	"fbs/src/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func planRequestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/plan-requests", func(ctx *gin.Context) {
			var body types.CreatePlanRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			request := models.PlanRequest{
				Name:            body.Name,
				Email:           body.Email,
				Destination:     body.Destination,
				StartDate:       body.StartDate,
				EndDate:         body.EndDate,
				Budget:          body.Budget,
				Preferences:     types.StringArray(body.Preferences),
				AdditionalNotes: body.AdditionalNotes,
				Status:          types.PLAN_REQUEST_PENDING,
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&request).Error; err != nil {
					return err
				}
				notification := models.Notification{
					Title:          "New vacation plan request",
					ReferenceType:  "plan_request",
					ReferenceValue: request.ID.String(),
					ReferenceBody: &types.JSONB{
						"destination": request.Destination,
						"email":       request.Email,
					},
				}
				return tx.Create(&notification).Error
			})
			if err != nil {
				log.Printf("Could not create plan request: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			go common.PlanRequestCreatedProducer(&request)

			ctx.JSON(http.StatusCreated, gin.H{"data": request})
		})
	return g
}
