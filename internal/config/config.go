package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	Port        string `envconfig:"PORT" default:"8080"`

	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	JWTTTLHours int    `envconfig:"JWT_TTL_HOURS" default:"24"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS"`

	GatewaySecretKey     string `envconfig:"GATEWAY_SECRET_KEY"`
	GatewayWebhookSecret string `envconfig:"GATEWAY_WEBHOOK_SECRET"`
	GatewayBaseURL       string `envconfig:"GATEWAY_BASE_URL" default:"https://api.stripe.com"`

	NotificationTTLDays int `envconfig:"NOTIFICATION_TTL_DAYS" default:"30"`
	SweepIntervalHours  int `envconfig:"NOTIFICATION_SWEEP_INTERVAL_HOURS" default:"24"`
}

func Load() (App, error) {
	_ = godotenv.Load()

	var c App
	err := envconfig.Process("", &c)
	return c, err
}
