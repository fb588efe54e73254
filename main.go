package main

import (
	"log"

	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gambo-stadium/gambo-api/internal/booking"
	"github.com/gambo-stadium/gambo-api/internal/premium"
	"github.com/gambo-stadium/gambo-api/internal/user"
	"github.com/gambo-stadium/gambo-api/routes"
)

// @title Gambo Stadium REST API
// @version 1.0
// @description Booking and premium training API for the Gambo Stadium facility.
// @host localhost:8000
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&booking.Booking{},
		&premium.PremiumTeam{}, &premium.Coach{}, &premium.PremiumProgram{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
