package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	HubSpot  HubSpot
	Postgres Postgres
	Kafka    Kafka
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
	// APIToken is a static bearer token for inbound requests. Empty disables the check.
	APIToken string `env:"HTTP_API_TOKEN" envDefault:""`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HubSpot struct {
	APIKey             string `env:"HUBSPOT_API_KEY" envDefault:""`
	BaseURL            string `env:"HUBSPOT_BASE_URL" envDefault:"https://api.hubapi.com"`
	UseMockData        bool   `env:"USE_MOCK_DATA" envDefault:"false"`
	StrictAssociations bool   `env:"CRM_STRICT_ASSOCIATIONS" envDefault:"false"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN" envDefault:""`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS" envDefault:""`
	ChatEventsTopic   string   `env:"KAFKA_CHAT_EVENTS_TOPIC" envDefault:"salesiq.chat-events"`
	WidgetEventsTopic string   `env:"KAFKA_WIDGET_EVENTS_TOPIC" envDefault:"salesiq.widget-events"`
}

// Enabled reports whether at least one broker address is configured.
func (k Kafka) Enabled() bool {
	for _, b := range k.Brokers {
		if b != "" {
			return true
		}
	}

	return false
}

func New(envPath string) (Config, error) {
	return parse[Config](envPath)
}

// Widget is the configuration of the terminal widget.
type Widget struct {
	APIURL   string `env:"WIDGET_API_URL" envDefault:"http://localhost:8080"`
	APIToken string `env:"HTTP_API_TOKEN" envDefault:""`
	Logger   Logger
	Kafka    Kafka
}

func NewWidget(envPath string) (Widget, error) {
	return parse[Widget](envPath)
}

func parse[T any](envPath string) (T, error) {
	var zero T

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return zero, err
	}

	c, err := env.ParseAsWithOptions[T](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return zero, err
	}

	return c, nil
}
