package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"eventsnow/internal/config"
	"eventsnow/internal/db"
	"eventsnow/internal/model"
	"eventsnow/internal/repository"
)

// seedEvents is a small fixture set so a fresh database has listings on both
// the /events/free and /events/pro pages.
var seedEvents = []model.Event{
	{
		Name:  "City Park Open Air Concert",
		Image: "https://images.eventsnow.local/open-air-concert.jpg",
		Price: decimal.Zero,
		Date:  "2026-09-12",
		Info:  "Free open air concert at the city park main stage.",
		Type:  model.EventTypeFree,
	},
	{
		Name:  "Weekend Food Truck Festival",
		Image: "https://images.eventsnow.local/food-trucks.jpg",
		Price: decimal.Zero,
		Date:  "2026-09-20",
		Info:  "Street food from thirty local vendors, entry is free.",
		Type:  model.EventTypeFree,
	},
	{
		Name:  "Go Conference Live",
		Image: "https://images.eventsnow.local/go-conf.jpg",
		Price: decimal.NewFromInt(149),
		Date:  "2026-10-03",
		Info:  "Two days of talks and workshops on backend engineering.",
		Type:  model.EventTypePro,
	},
	{
		Name:  "Jazz Night at the Blue Room",
		Image: "https://images.eventsnow.local/jazz-night.jpg",
		Price: decimal.NewFromFloat(39.50),
		Date:  "2026-10-17",
		Info:  "An evening with the city jazz quartet, seats are limited.",
		Type:  model.EventTypePro,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Event{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repo := repository.NewEventRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for i := range seedEvents {
		event := seedEvents[i]
		if _, err := repo.FindByName(ctx, event.Name); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check event %q: %v", event.Name, err)
		}
		if err := repo.Create(ctx, &event); err != nil {
			log.Fatalf("Failed to create event %q: %v", event.Name, err)
		}
		created++
	}

	log.Printf("Seed completed: %d created, %d already present", created, skipped)
}
