package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Gateway  *Gateway
	Telegram *Telegram
	Sweep    *Sweep
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
	AdminToken string `env:"ADMIN_TOKEN"`
}

type Gateway struct {
	HostString    string `env:"GATEWAY_ADDRESS"`
	WebhookSecret string `env:"PAYMENT_SECRET"`
}

type Telegram struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `env:"TELEGRAM_CHAT_ID"`
}

type Sweep struct {
	OrderTTL time.Duration `env:"ORDER_TTL" envDefault:"15m"`
	Interval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var gateway Gateway
	var telegram Telegram
	var sweep Sweep
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&gateway.HostString, "g", "", "Payment gateway address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}
	err = env.Parse(&telegram)
	if err != nil {
		return nil, fmt.Errorf("error parsing telegram config: %w", err)
	}
	err = env.Parse(&sweep)
	if err != nil {
		return nil, fmt.Errorf("error parsing sweep config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Gateway:  &gateway,
		Telegram: &telegram,
		Sweep:    &sweep,
		App:      &app,
	}

	return &config, nil
}
