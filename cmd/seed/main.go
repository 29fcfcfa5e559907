package main

import (
	"log"

	"github.com/cherryclub/campus-api/config"
	"github.com/cherryclub/campus-api/database"
)

// Seeds region groups, universities and the admin user. Safe to run more
// than once: existing rows are left alone.
func main() {
	if err := config.LoadENV(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	seeder := database.NewSeeder(store.DB())
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed")
}
