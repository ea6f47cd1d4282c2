package wellfound

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/prannavdeshpande/foundry/internal/browser"
	"github.com/prannavdeshpande/foundry/internal/config"
	"github.com/prannavdeshpande/foundry/internal/dedup"
	"github.com/prannavdeshpande/foundry/internal/scraper"
	"github.com/prannavdeshpande/foundry/utils"
)

const origin = "https://wellfound.com"

// WellfoundScraper walks the Wellfound search feed, collects detail-page
// links and visits each one, handing the rendered markup to the extractor.
type WellfoundScraper struct {
	cfg       *config.Config
	extractor *scraper.Extractor
	cache     *dedup.PostingCache
}

func NewWellfoundScraper(cfg *config.Config, cache *dedup.PostingCache) *WellfoundScraper {
	return &WellfoundScraper{
		cfg:       cfg,
		extractor: &scraper.Extractor{},
		cache:     cache,
	}
}

func (s *WellfoundScraper) Name() string {
	return "Wellfound"
}

// normalizeQuery strips diacritics and lowercases so search terms survive
// the query string.
func normalizeQuery(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// searchURL builds the feed URL from the profile's top keywords and first
// preferred location.
func (s *WellfoundScraper) searchURL() string {
	var params []string

	keywords := s.cfg.Profile.Keywords
	if len(keywords) > 2 {
		keywords = keywords[:2]
	}
	if len(keywords) > 0 {
		query := normalizeQuery(strings.Join(keywords, " "))
		params = append(params, "q="+strings.ReplaceAll(query, " ", "+"))
	}

	if len(s.cfg.Profile.Locations) > 0 {
		location := normalizeQuery(s.cfg.Profile.Locations[0])
		params = append(params, "l="+strings.ReplaceAll(location, " ", "+"))
	}

	url := s.cfg.BaseURL
	if len(params) > 0 && !strings.Contains(url, "?") {
		url += "?" + strings.Join(params, "&")
	}
	return url
}

// blocked checks the page title for the usual anti-bot interstitials.
func blocked(page playwright.Page) bool {
	title, _ := page.Title()
	return strings.Contains(title, "Cloudflare") ||
		strings.Contains(title, "Attention Required") ||
		strings.Contains(title, "Just a moment")
}

func (s *WellfoundScraper) Scrape(ctx context.Context, page playwright.Page) ([]scraper.Posting, error) {
	log.Println("📋 Searching Wellfound...")

	//initialize screenshot debugger
	screenshotDebugger := utils.NewScreenShotDebugger()

	//warmup phase
	log.Println("🏠 Navigating to Wellfound home for warm-up...")
	if _, err := page.Goto(origin, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		log.Printf("⚠️ Error navigating to %s: %v", origin, err)
	}
	if blocked(page) {
		log.Println("❌ Cloudflare blocked on homepage. Skipping...")
		screenshotDebugger.CaptureAndLog(page, "wellfound-cloudflare-home", "🚨 Wellfound: Blocked by Cloudflare on homepage")
		return nil, nil
	}

	//simulate reading before hitting the feed
	warmUpDuration := time.Duration(rand.Intn(3000)+2000) * time.Millisecond
	log.Printf("⏳ Warming up for %v...", warmUpDuration)
	time.Sleep(warmUpDuration)

	//navigate to the search feed
	url := s.searchURL()
	log.Printf("  🔍 Searching: %s", url)

	page.SetExtraHTTPHeaders(map[string]string{
		"Referer": origin + "/",
	})

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		log.Printf("⚠️ Error navigating to %s: %v", url, err)
		return nil, nil
	}

	if blocked(page) {
		log.Println("    🛡️ Cloudflare challenge detected. Waiting 7s...")
		screenshotDebugger.CaptureAndLog(page, "wellfound-cloudflare-challenge", "🚨 Wellfound: Cloudflare challenge detected")
		time.Sleep(7 * time.Second)
		if blocked(page) {
			log.Println("❌ Cloudflare challenge failed. Skipping...")
			return nil, nil
		}
	}

	//captcha check
	captchaCount, _ := page.Locator(".captcha, .recaptcha, [data-captcha]").Count()
	if captchaCount > 0 {
		log.Println("⚠️ CAPTCHA detected. Skipping this search...")
		screenshotDebugger.CaptureAndLog(page, "wellfound-captcha-detected", "🚨 Wellfound: CAPTCHA detected")
		return nil, nil
	}

	//human behavior, then scroll through the infinite feed
	browser.RandomDelay(1000, 2000)
	browser.MouseJiggle(page)
	for i := 0; i < s.cfg.MaxPages; i++ {
		browser.ScrollToBottom(page)
		browser.RandomDelay(1500, 2500)
	}

	//collect candidate detail links from the rendered feed
	content, err := page.Content()
	if err != nil {
		log.Printf("⚠️ Error reading feed content: %v", err)
		return nil, nil
	}
	links := scraper.CollectJobLinks(content, origin)
	log.Printf("    📦 Collected %d job links. Visiting details...", len(links))

	var postings []scraper.Posting
	for index, link := range links {
		//check context cancellation
		if ctx.Err() != nil {
			return postings, ctx.Err()
		}

		if s.cache != nil && s.cache.IsSeen(link) {
			log.Printf("  ⏭️ (%d/%d) Already seen: %s", index+1, len(links), link)
			continue
		}

		log.Printf("  🔗 (%d/%d) %s", index+1, len(links), link)
		if _, err := page.Goto(link, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
			Timeout:   playwright.Float(30000),
		}); err != nil {
			log.Printf("    ⚠️ Error navigating to %s: %v", link, err)
			continue
		}

		//mandatory inter-request delay, jittered to behave like a human
		delayMs := s.cfg.DelaySeconds * 1000
		browser.RandomDelay(delayMs+1000, delayMs+3000)

		//wait for the H1 title to ensure the page actually loaded
		if err := page.Locator("h1").First().WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(float64(s.cfg.TimeoutSecs) * 1000),
		}); err != nil {
			log.Printf("    ⚠️ Timeout waiting for page load: %s", link)
			continue
		}

		html, err := page.Content()
		if err != nil {
			log.Printf("    ⚠️ Error reading page content: %v", err)
			continue
		}

		posting := s.extractor.ParseJobDetail(html, link)
		postings = append(postings, posting)
		log.Printf("      ✅ %s - %s", posting.Title, posting.Company)
	}

	return postings, nil
}
