package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	SiteURL    string `env:"SITE_URL" envDefault:"https://yourdomain.com"`
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`
	StaticDir  string `env:"STATIC_DIR"`
	PressEmail string `env:"PRESS_EMAIL" envDefault:"camryncjackson@gmail.com"`
	Locale     string `env:"SITE_LOCALE" envDefault:"en-US"`
}

var (
	PORT        string
	SITE_URL    string
	APP_ENV     string
	LOG_LEVEL   string
	CORS_ORIGIN string
	STATIC_DIR  string
	PRESS_EMAIL string
	LOCALE      language.Tag
)

func init() {
	// Usable defaults for tests and commands that never call LoadEnv.
	cfg, _ := Parse()
	apply(cfg)
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	apply(cfg)
}

// Parse reads the environment into a Config and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	cfg.SiteURL = strings.TrimRight(strings.TrimSpace(cfg.SiteURL), "/")
	if !strings.HasPrefix(cfg.SiteURL, "http://") && !strings.HasPrefix(cfg.SiteURL, "https://") {
		return cfg, fmt.Errorf("SITE_URL must be an absolute http(s) URL, got %q", cfg.SiteURL)
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return cfg, fmt.Errorf("SITE_LOCALE: %w", err)
	}
	return cfg, nil
}

func apply(cfg Config) {
	PORT = cfg.Port
	SITE_URL = cfg.SiteURL
	APP_ENV = cfg.Env
	LOG_LEVEL = cfg.LogLevel
	CORS_ORIGIN = cfg.CORSOrigin
	STATIC_DIR = cfg.StaticDir
	PRESS_EMAIL = cfg.PressEmail
	LOCALE = language.Make(cfg.Locale)
}

// Lang is the primary language subtag for <html lang>, e.g. "en".
func Lang() string {
	base, _ := LOCALE.Base()
	return base.String()
}

// OGLocale is the Open Graph form of the locale, e.g. "en_US".
func OGLocale() string {
	base, _ := LOCALE.Base()
	region, conf := LOCALE.Region()
	if conf == language.No {
		return base.String()
	}
	return base.String() + "_" + region.String()
}
