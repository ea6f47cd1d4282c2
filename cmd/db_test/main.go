package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/prannavdeshpande/foundry/internal/database"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		godotenv.Load("../../.env") // Fallback
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set. Please check your .env file.")
	}

	fmt.Println("Attempting to connect to PostgreSQL...")

	// Set a timeout context
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := database.ConnectDB(ctx, dbURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to the database: %v", err)
	}
	defer repo.Close()

	if err := repo.InitSchema(ctx); err != nil {
		log.Fatalf("❌ Failed to init schema: %v", err)
	}

	stats, err := repo.GetStats(ctx)
	if err != nil {
		log.Fatalf("❌ Stats query failed: %v", err)
	}

	fmt.Println("✅ Successfully connected to the database!")
	fmt.Printf("📦 Total postings: %d (notified: %d, pending: %d, avg score: %.1f)\n",
		stats.TotalJobs, stats.Notified, stats.Pending, stats.AvgMatchScore)
}
