// Define the posting record and the interface all site scrapers implement
// Ensure consistency

package scraper

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// Posting is the normalized record describing one job listing extracted
// from a detail page.
type Posting struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Stipend          string   `json:"stipend"`
	Equity           string   `json:"equity"`
	Skills           []string `json:"skills"`    // UI tags + keywords, unique
	UISkills         []string `json:"ui_skills"` // just the tags
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	ApplyURL         string   `json:"apply_url"`
	MatchScore       int      `json:"match_score"`
	MatchedSkills    []string `json:"matched_skills,omitempty"`
	MatchedKeywords  []string `json:"matched_keywords,omitempty"`
	LocationMatch    bool     `json:"location_match,omitempty"`
}

// Scraper defines the interface that all platform scrapers must implement
type Scraper interface {
	// Scrape jobs from the platform
	Scrape(ctx context.Context, page playwright.Page) ([]Posting, error)

	// Name is the platform name (Wellfound, ...)
	Name() string
}
