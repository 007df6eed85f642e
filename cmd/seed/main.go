// Command seed populates the database with demo data for development.
package main

import (
	"flag"
	"log"
	"strings"

	"clipstream/internal/config"
	"clipstream/internal/database"
	"clipstream/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "number of users to create")
	numVideos := flag.Int("videos", 120, "number of videos to create")
	clean := flag.Bool("clean", true, "clear existing data before seeding")
	fast := flag.Bool("fast", false, "skip bcrypt hashing for faster seeding (dev only)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if strings.EqualFold(cfg.Env, "production") || strings.EqualFold(cfg.Env, "prod") {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumVideos:   *numVideos,
		ShouldClean: *clean,
		SkipBcrypt:  *fast,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
