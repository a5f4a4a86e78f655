// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL  string `yaml:"base_url"`
	Headless bool   `yaml:"headless"`

	//Credentials (env only, never yaml)
	Username string `yaml:"-" env:"CATCH_USERNAME"`
	Password string `yaml:"-" env:"CATCH_PASSWORD"`

	//Engine timing (milliseconds)
	ControlTimeoutMs int `yaml:"control_timeout_ms"`
	ChangeTimeoutMs  int `yaml:"change_timeout_ms"`
	SettleIntervalMs int `yaml:"settle_interval_ms"`
	NavTimeoutMs     int `yaml:"nav_timeout_ms"`

	//Collection defaults
	DefaultPageCap int `yaml:"default_page_cap"`

	//Paths
	CookiesPath string `yaml:"cookies_path"`
	CachePath   string `yaml:"cache_path"`

	//Reporting (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Persistence (optional)
	DatabaseURL string `yaml:"-" env:"DATABASE_URL"`

	//HTTP server
	Port string `yaml:"port" env:"PORT"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	cfg.Username = os.Getenv("CATCH_USERNAME")
	cfg.Password = os.Getenv("CATCH_PASSWORD")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

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
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	//Set default values if not set
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.catch.co.kr/"
	}
	if cfg.ControlTimeoutMs == 0 {
		cfg.ControlTimeoutMs = 3000
	}
	if cfg.ChangeTimeoutMs == 0 {
		cfg.ChangeTimeoutMs = 15000
	}
	if cfg.SettleIntervalMs == 0 {
		cfg.SettleIntervalMs = 1000
	}
	if cfg.NavTimeoutMs == 0 {
		cfg.NavTimeoutMs = 30000
	}
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	return cfg
}

func (c *Config) ControlTimeout() time.Duration {
	return time.Duration(c.ControlTimeoutMs) * time.Millisecond
}

func (c *Config) ChangeTimeout() time.Duration {
	return time.Duration(c.ChangeTimeoutMs) * time.Millisecond
}

func (c *Config) SettleInterval() time.Duration {
	return time.Duration(c.SettleIntervalMs) * time.Millisecond
}

func (c *Config) NavTimeout() time.Duration {
	return time.Duration(c.NavTimeoutMs) * time.Millisecond
}
