package main

import (
	"fmt"
	"log"

	"github.com/prannavdeshpande/foundry/internal/browser"
)

func main() {
	fmt.Println("🌐 Testing Browser Manager...")

	//create playwright manager
	pm, err := browser.NewPlaywright(false, nil)
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	fmt.Println("✅ Playwright started")

	browserCtx, err := pm.NewContext(nil)
	if err != nil {
		log.Fatalf("Failed to create browser context: %v", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	if _, err := page.Goto("https://wellfound.com"); err != nil {
		log.Fatalf("Failed to navigate: %v", err)
	}

	title, _ := page.Title()
	fmt.Printf("✅ Page loaded. Title: %s\n", title)
}
