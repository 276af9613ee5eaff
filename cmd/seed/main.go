package main

import (
	"log"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/application"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/config"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/config/db"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository"
)

// Seeds the first admin account from SEED_ADMIN_* env vars. Safe to run
// repeatedly: does nothing once an admin exists.
func main() {
	config.LoadConfig()
	db.Init()

	if config.SeedAdminEmail == "" || config.SeedAdminPassword == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}

	repos := repository.NewRepositories(db.DB)
	auth := application.NewAuthService(repos)

	created, err := auth.SeedAdmin(config.SeedAdminEmail, config.SeedAdminPassword, config.SeedAdminName)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if created {
		log.Printf("Admin account created: %s", config.SeedAdminEmail)
	} else {
		log.Println("Admin account already exists; nothing to do")
	}
}
