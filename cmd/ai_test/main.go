package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/prannavdeshpande/foundry/internal/ai"
	"github.com/prannavdeshpande/foundry/internal/scraper"
)

func main() {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		log.Println("GROQ_API_KEY environment variable not set. Please set it to test the AI.")
		return
	}

	client := ai.NewGroqClient(apiKey)

	posting := scraper.Posting{
		Title:   "Senior Python Developer",
		Company: "TechCorp",
		FullDescription: "We are looking for an experienced Python developer " +
			"to build scalable backend systems using FastAPI and PostgreSQL.",
		MatchedSkills: []string{"python", "fastapi", "postgresql"},
	}

	fmt.Println("Sending request to Groq to generate a cover letter...")

	letter, err := client.GenerateCoverLetter(context.Background(), posting,
		[]string{"Python", "FastAPI", "PostgreSQL", "Docker", "AWS"})
	if err != nil {
		log.Fatalf("GenerateCoverLetter failed: %v", err)
	}

	fmt.Println("\nSuccess! Generated cover letter:")
	fmt.Println(letter)
}
