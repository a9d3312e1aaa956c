package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"fixnow/internal/database"
	"fixnow/internal/domain"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = "fixnow.db"
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM professionals")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM users")

	log.Println("Creating admin user...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Name:         "FixNow Admin",
		Email:        "admin@fixnow.app",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	log.Println("Creating services catalog...")
	services := []domain.Service{
		{
			Name: "Leak Repair", Category: domain.CategoryPlumbing,
			Description: "Diagnose and fix pipe, faucet and fixture leaks.",
			BasePrice:   95, PriceUnit: domain.UnitJob, EstimatedDuration: 1.5,
			MaterialsIncluded: false, Difficulty: domain.DifficultyMedium, IsActive: true,
		},
		{
			Name: "Drain Cleaning", Category: domain.CategoryPlumbing,
			Description: "Clear clogged drains and sewer lines.",
			BasePrice:   120, PriceUnit: domain.UnitJob, EstimatedDuration: 2,
			MaterialsIncluded: true, Difficulty: domain.DifficultyMedium, IsActive: true,
		},
		{
			Name: "Outlet Installation", Category: domain.CategoryElectrical,
			Description: "Install or replace electrical outlets and switches.",
			BasePrice:   80, PriceUnit: domain.UnitJob, EstimatedDuration: 1,
			MaterialsIncluded: true, Difficulty: domain.DifficultyEasy, IsActive: true,
			RequiredCertifications: []string{"licensed_electrician"},
		},
		{
			Name: "Panel Upgrade", Category: domain.CategoryElectrical,
			Description: "Upgrade the main electrical panel.",
			BasePrice:   1800, PriceUnit: domain.UnitJob, EstimatedDuration: 8,
			MaterialsIncluded: true, Difficulty: domain.DifficultyExpert, IsActive: true,
			RequiredCertifications: []string{"licensed_electrician", "master_electrician"},
		},
		{
			Name: "AC Tune-Up", Category: domain.CategoryHVAC,
			Description: "Seasonal air conditioner inspection and tune-up.",
			BasePrice:   130, PriceUnit: domain.UnitJob, EstimatedDuration: 2,
			MaterialsIncluded: false, Difficulty: domain.DifficultyMedium, IsActive: true,
			RequiredCertifications: []string{"epa_608"},
		},
		{
			Name: "Interior Painting", Category: domain.CategoryPainting,
			Description: "Walls and ceilings, prep included.",
			BasePrice:   3.5, PriceUnit: domain.UnitSquareFoot, EstimatedDuration: 6,
			MaterialsIncluded: false, Difficulty: domain.DifficultyEasy, IsActive: true,
		},
		{
			Name: "Deep Cleaning", Category: domain.CategoryCleaning,
			Description: "Whole-home deep clean.",
			BasePrice:   45, PriceUnit: domain.UnitHour, EstimatedDuration: 4,
			MaterialsIncluded: true, Difficulty: domain.DifficultyEasy, IsActive: true,
		},
		{
			Name: "Lawn Mowing", Category: domain.CategoryLandscaping,
			Description: "Mowing, edging and cleanup.",
			BasePrice:   55, PriceUnit: domain.UnitJob, EstimatedDuration: 1.5,
			MaterialsIncluded: true, Difficulty: domain.DifficultyEasy, IsActive: true,
		},
		{
			Name: "Roof Inspection", Category: domain.CategoryRoofing,
			Description: "Full roof inspection with written report.",
			BasePrice:   150, PriceUnit: domain.UnitJob, EstimatedDuration: 2,
			MaterialsIncluded: false, Difficulty: domain.DifficultyHard, IsActive: true,
		},
		{
			Name: "Appliance Diagnostics", Category: domain.CategoryApplianceRepair,
			Description: "Diagnose washer, dryer, fridge or oven faults.",
			BasePrice:   75, PriceUnit: domain.UnitJob, EstimatedDuration: 1,
			MaterialsIncluded: false, Difficulty: domain.DifficultyMedium, IsActive: true,
		},
	}
	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			log.Fatalf("seed service %q failed: %v", services[i].Name, err)
		}
	}

	log.Printf("Seed completed: admin=%s services=%d", admin.Email, len(services))
}
