package main

import (
	"flag"
	"log"

	"ideaboard/internal/config"
	"ideaboard/internal/database"
	"ideaboard/internal/seed"
)

func main() {
	users := flag.Int("users", 12, "number of fake users to create")
	demo := flag.Bool("demo", false, "also create the fixed demo walkthrough data")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{Users: *users}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	if *demo {
		if err := seed.SeedDemo(db); err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
	}
}
