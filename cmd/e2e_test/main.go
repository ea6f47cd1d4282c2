// Offline end-to-end check: feed a saved detail page through the extractor
// and the matcher without touching the browser.
// Usage: go run ./cmd/e2e_test <saved-page.html> [source-url]
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/prannavdeshpande/foundry/internal/config"
	"github.com/prannavdeshpande/foundry/internal/filter"
	"github.com/prannavdeshpande/foundry/internal/scraper"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: e2e_test <saved-page.html> [source-url]")
	}

	sourceURL := "https://wellfound.com/jobs/000000-saved-page"
	if len(os.Args) > 2 {
		sourceURL = os.Args[2]
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read %s: %v", os.Args[1], err)
	}

	cfg := config.Load("configs/config.yaml")
	profile := filter.NewProfile(
		cfg.Profile.Skills,
		cfg.Profile.Keywords,
		cfg.Profile.Locations,
		cfg.Profile.MinMatchScore,
	)

	extractor := &scraper.Extractor{}
	posting := extractor.ParseJobDetail(string(data), sourceURL)
	filter.Annotate(&posting, filter.Match(posting, profile))

	fmt.Printf("Title:    %s\n", posting.Title)
	fmt.Printf("Company:  %s\n", posting.Company)
	fmt.Printf("Location: %s\n", posting.Location)
	fmt.Printf("Stipend:  %s (equity: %s)\n", posting.Stipend, posting.Equity)
	fmt.Printf("Skills:   %v\n", posting.Skills)
	fmt.Printf("UI tags:  %v\n", posting.UISkills)
	fmt.Printf("Score:    %d/100 (%s)\n", posting.MatchScore, filter.Summary(posting))
	fmt.Printf("Short:    %s\n", posting.ShortDescription)
}
