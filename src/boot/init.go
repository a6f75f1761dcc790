package boot

import (
	"context"
	"fbs/src/common"
	"fbs/src/db"
	"fbs/src/lib"
	"fbs/src/models"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Airport{},
		&models.Flight{},
		&models.Booking{},
		&models.PlanRequest{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	SeedAirports(db)

	return db
}

// SeedAirports loads the reference airport list on first boot. Existing rows
// win: admin edits are never overwritten by a restart.
func SeedAirports(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Airport{}).Count(&count).Error; err != nil {
		log.Printf("Error counting airports: %s\n", err.Error())
		return
	}
	if count > 0 {
		return
	}
	if err := db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seedAirports).
		Error; err != nil {
		log.Printf("Error seeding airports: %s\n", err.Error())
		return
	}
	log.Printf("Seeded %d airports\n", len(seedAirports))
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	jobId, err := lib.CreateCronJob(func() {
		if _, err := common.ListFlights(context.Background()); err != nil {
			log.Printf("Error warming flights cache: %s\n", err.Error())
		}
	}, 5*time.Minute)
	if err != nil {
		log.Printf("Error creating cache warm job: %s\n", err.Error())
		return
	}
	log.Printf("Cache warm job: %s\n", *jobId)
	jobsWaitingInQueue := len(sched.Jobs())
	log.Println("Jobs in queue:", jobsWaitingInQueue)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
		return
	}
}
