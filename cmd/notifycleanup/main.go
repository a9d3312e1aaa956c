package main

import (
	"context"
	"log"
	"os"
	"time"

	"fixnow/internal/database"
	"fixnow/internal/repository"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	repo := repository.NewNotificationRepository(db)
	removed, err := repo.DeleteExpired(context.Background(), time.Now().UTC())
	if err != nil {
		log.Fatalf("notification cleanup failed: %v", err)
	}

	log.Printf("notification cleanup completed: removed=%d", removed)
}
