package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/karshdev/LeadBlock-BE/internal/config"
	"github.com/karshdev/LeadBlock-BE/internal/modules/auth"
	"github.com/karshdev/LeadBlock-BE/internal/modules/lead"
	"github.com/karshdev/LeadBlock-BE/internal/storage"
)

// Wipes the lead file and repopulates it with fixtures, and makes sure the
// default admin account exists. Intended for local development only.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Ensuring default admin...")
	userRepo := auth.NewRepository(storage.NewStore(cfg.UsersFile))
	if err := userRepo.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Fatal("seed admin failed:", err)
	}

	log.Println("Seeding leads...")
	leadStore := storage.NewStore(cfg.LeadsFile)

	fixtures := []struct {
		name    string
		company string
		email   string
		status  lead.Status
	}{
		{"Ann Chambers", "Acme", "ann@acme.com", lead.StatusActive},
		{"Boris Petrov", "Globex", "boris@globex.io", lead.StatusActive},
		{"Carla Diaz", "Initech", "carla@initech.dev", lead.StatusInactive},
		{"Dmitry Orlov", "Umbrella", "dmitry@umbrella.org", lead.StatusActive},
		{"Elif Kaya", "Stark Industries", "elif@stark.co", lead.StatusInactive},
	}

	leads := make([]lead.Lead, 0, len(fixtures))
	now := time.Now().UTC()
	for _, f := range fixtures {
		leads = append(leads, lead.Lead{
			ID:        uuid.NewString(),
			Name:      f.name,
			Company:   f.company,
			Email:     f.email,
			Status:    f.status,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := leadStore.Save(leads); err != nil {
		log.Fatal("seed leads failed:", err)
	}

	log.Printf("Seeded %d leads into %s", len(leads), cfg.LeadsFile)
}
