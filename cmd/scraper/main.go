package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/prannavdeshpande/foundry/internal/ai"
	"github.com/prannavdeshpande/foundry/internal/browser"
	"github.com/prannavdeshpande/foundry/internal/config"
	"github.com/prannavdeshpande/foundry/internal/database"
	"github.com/prannavdeshpande/foundry/internal/dedup"
	"github.com/prannavdeshpande/foundry/internal/filter"
	"github.com/prannavdeshpande/foundry/internal/scraper"
	"github.com/prannavdeshpande/foundry/internal/scraper/wellfound"
	"github.com/prannavdeshpande/foundry/internal/telegram"
)

func main() {
	//load config
	cfg := config.Load("configs/config.yaml")
	log.Printf("🔧 Config loaded. Profile keywords: %v", cfg.Profile.Keywords)

	profile := filter.NewProfile(
		cfg.Profile.Skills,
		cfg.Profile.Keywords,
		cfg.Profile.Locations,
		cfg.Profile.MinMatchScore,
	)

	//init telegram bot
	var bot *telegram.Bot
	if cfg.TelegramEnabled {
		var err error
		bot, err = telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram Bot: %v", err)
		}
		log.Println("🤖 Telegram Bot initialized.")
	} else {
		log.Println("ℹ️ Telegram is disabled in config")
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting Wellfound job automation...")

	//connect database (optional: without it results only go to the log)
	var repo *database.Repository
	if cfg.DatabaseURL != "" {
		var err error
		repo, err = database.ConnectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️ Database unavailable: %v. Printing results to console only.", err)
		} else {
			defer repo.Close()
			if err := repo.InitSchema(ctx); err != nil {
				log.Fatalf("❌ Failed to init database schema: %v", err)
			}
		}
	}

	//init playwright manager
	pwManager, err := browser.NewPlaywright(cfg.Headless, cfg.UserAgents)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	//close playwright manager when application stops
	defer pwManager.Close()

	//load cookies if an exported session exists
	var cookies []playwright.OptionalCookie
	cookieFile := filepath.Join(cfg.CookiesPath, "cookies-wellfound.json")
	if loaded, err := browser.LoadCookies(cookieFile); err != nil {
		log.Printf("⚠️ Could not load wellfound cookies: %v. Continuing.", err)
	} else {
		log.Printf("🍪 Loaded wellfound cookies (%d)", len(loaded))
		cookies = loaded
	}

	//create new browser context with cookies
	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		log.Fatalf("❌ Failed to create browser context: %v", err)
	}

	//create new page
	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("❌ Failed to create new page: %v", err)
	}
	log.Println("✅ Browser initialized successfully!")

	//scrape the feed, skipping detail pages seen in previous runs
	cache := dedup.NewPostingCache(cfg.CachePath)
	s := wellfound.NewWellfoundScraper(cfg, cache)

	log.Printf("▶️ Starting scraper: %s", s.Name())
	postings, err := s.Scrape(ctx, page)
	if err != nil {
		log.Printf("❌ Error running scraper %s: %v", s.Name(), err)
	}
	log.Printf("📦 Extraction complete. Found %d postings.", len(postings))

	if len(postings) == 0 {
		log.Println("🏁 No postings found. Exiting.")
		return
	}

	//mark visited detail pages as seen
	var visited []string
	for _, p := range postings {
		visited = append(visited, p.ApplyURL)
	}
	cache.Add(visited)

	//score against the profile and keep everything at or above threshold
	matched := filter.FilterPostings(postings, profile)
	log.Printf("📊 Filtered: %d/%d postings (sorted by score)", len(matched), len(postings))

	if len(matched) == 0 {
		log.Println("🏁 No matching postings. Exiting.")
		return
	}

	//display top results
	top := matched
	if len(top) > 2 {
		top = top[:2]
	}
	for _, p := range top {
		log.Printf("  [%d/100] %s @ %s (%s)", p.MatchScore, p.Title, p.Company, filter.Summary(p))
	}

	//notification contract: matched skills default to the combined skills
	//when the scoring annotation is missing
	for i := range matched {
		if len(matched[i].MatchedSkills) == 0 {
			matched[i].MatchedSkills = matched[i].Skills
		}
	}

	//save to database
	if repo != nil {
		inserted, err := repo.SavePostings(ctx, matched)
		if err != nil {
			log.Printf("⚠️ Failed to save postings: %v", err)
		} else {
			log.Printf("💾 Saved %d new postings", inserted)
		}

		//generate cover letters for the new matches
		if cfg.CoverLetterEnabled && cfg.GroqAPIKey != "" {
			client := ai.NewGroqClient(cfg.GroqAPIKey)
			for _, p := range matched {
				letter, err := client.GenerateCoverLetter(ctx, p, cfg.Profile.Skills)
				if err != nil {
					log.Printf("⚠️ Cover letter failed for %s: %v", p.Title, err)
					continue
				}
				if err := repo.SaveCoverLetter(ctx, p.ID, letter); err != nil {
					log.Printf("⚠️ Failed to save cover letter for %s: %v", p.Title, err)
				}
			}
		}
	}

	//send telegram alerts in batches
	if bot != nil {
		sent := bot.SendJobAlerts(matched, cfg.BatchSize)
		if len(sent) == 0 {
			if err := bot.SendStatus("⚠️ No job alerts were sent. Check logs for details."); err != nil {
				log.Printf("⚠️ Failed to send status to Telegram: %v", err)
			}
		} else {
			log.Printf("📨 Sent %d/%d postings to Telegram", len(sent), len(matched))

			//only flag rows whose alert actually went out; anything else
			//stays unnotified and is retried next run
			if repo != nil {
				var ids []string
				for _, p := range sent {
					ids = append(ids, p.ID)
				}
				if err := repo.MarkNotified(ctx, ids); err != nil {
					log.Printf("⚠️ Failed to mark postings notified: %v", err)
				}
			}

			totalScore := 0
			for _, p := range matched {
				totalScore += p.MatchScore
			}
			if err := bot.SendSummary(telegram.RunStats{
				Scraped:  len(postings),
				Matched:  len(matched),
				Sent:     len(sent),
				AvgScore: float64(totalScore) / float64(len(matched)),
			}); err != nil {
				log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
			}
		}
	}

	//save results
	savePostings(matched)

	log.Println("🏁 Execution finished.")
}

func savePostings(postings []scraper.Posting) {
	if len(postings) == 0 {
		log.Println("ℹ️ No postings to save.")
		return
	}

	//create logs directory if not exists
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	//gen filename: job-search-YYYY-MM-DD.json
	filename := fmt.Sprintf("job-search-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(logDir, filename)

	//marshal
	data, err := json.MarshalIndent(postings, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal postings to JSON: %v", err)
		return
	}

	//write file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write logs file: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
