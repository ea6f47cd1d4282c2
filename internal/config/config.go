// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Scraper behaviour
	BaseURL      string   `yaml:"base_url"`
	MaxPages     int      `yaml:"max_pages"`
	DelaySeconds int      `yaml:"delay_seconds"`
	TimeoutSecs  int      `yaml:"timeout_seconds"`
	Headless     bool     `yaml:"headless"`
	UserAgents   []string `yaml:"user_agents"`

	//User profile used for matching
	Profile ProfileConfig `yaml:"profile"`

	//Telegram
	TelegramEnabled bool   `yaml:"telegram_enabled"`
	TelegramToken   string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID  int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	BatchSize       int    `yaml:"batch_size"`

	//Postgres
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`

	//Cover letters (optional)
	CoverLetterEnabled bool   `yaml:"cover_letter_enabled"`
	GroqAPIKey         string `yaml:"groq_api_key" env:"GROQ_API_KEY"`

	//Paths
	CookiesPath string `yaml:"cookies_path"`
	CachePath   string `yaml:"cache_path"`
}

type ProfileConfig struct {
	Skills        []string `yaml:"skills"`
	Keywords      []string `yaml:"keywords"`
	Locations     []string `yaml:"locations"`
	MinMatchScore int      `yaml:"min_match_score"`
}

func Load(path string) *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" {
		cfg.GroqAPIKey = apiKey
	}

	//Set default values if not set
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://wellfound.com/jobs"
	}

	if cfg.MaxPages == 0 {
		cfg.MaxPages = 1
	}

	if cfg.DelaySeconds == 0 {
		cfg.DelaySeconds = 3
	}

	if cfg.TimeoutSecs == 0 {
		cfg.TimeoutSecs = 15
	}

	if cfg.BatchSize == 0 {
		cfg.BatchSize = 5
	}

	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies"
	}

	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}

	if len(cfg.UserAgents) == 0 {
		cfg.UserAgents = []string{
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		}
	}

	//Validate required fields
	if cfg.TelegramEnabled {
		if cfg.TelegramToken == "" {
			log.Fatal("TELEGRAM_BOT_TOKEN is required when telegram is enabled")
		}

		if cfg.TelegramChatID == 0 {
			log.Fatal("TELEGRAM_CHAT_ID is required when telegram is enabled")
		}
	}

	return cfg
}
