package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prannavdeshpande/foundry/internal/config"
	"github.com/prannavdeshpande/foundry/internal/database"
	"github.com/prannavdeshpande/foundry/internal/filter"
)

func main() {
	cfg := config.Load("configs/config.yaml")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx := context.Background()
	repo, err := database.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Wellfound job automation API is running!",
			"status":  "healthy",
		})
	})

	r.GET("/stats", func(c *gin.Context) {
		stats, err := repo.GetStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	r.GET("/jobs", func(c *gin.Context) {
		minScore := filter.DefaultMinMatchScore
		if raw := c.Query("min_score"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "min_score must be an integer"})
				return
			}
			minScore = parsed
		}

		postings, err := repo.GetUnnotifiedPostings(c.Request.Context(), minScore)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(postings), "jobs": postings})
	})

	log.Printf("Server listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
