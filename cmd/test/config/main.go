package main

import (
	"fmt"

	"github.com/prannavdeshpande/foundry/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg := config.Load("configs/config.yaml")
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Base URL: %s\n", cfg.BaseURL)
	fmt.Printf("   Max Pages: %d\n", cfg.MaxPages)
	fmt.Printf("   Profile Skills: %v\n", cfg.Profile.Skills)
	fmt.Printf("   Profile Keywords: %v\n", cfg.Profile.Keywords)
	fmt.Printf("   Profile Locations: %v\n", cfg.Profile.Locations)
	fmt.Printf("   Min Match Score: %d\n", cfg.Profile.MinMatchScore)
	fmt.Printf("   Telegram Enabled: %t\n", cfg.TelegramEnabled)
	fmt.Printf("   Batch Size: %d\n", cfg.BatchSize)
	fmt.Printf("   Cookies Path: %s\n", cfg.CookiesPath)
	fmt.Printf("   Cache Path: %s\n", cfg.CachePath)
}
