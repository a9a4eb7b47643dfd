package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServiceEnvironment      string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	ServiceAPIPort          string `envconfig:"SERVICE_API_PORT" default:"8080"`
	DatabasePath            string `envconfig:"DATABASE_PATH" default:"planit.db"`
	TicketmasterBaseURL     string `envconfig:"TICKETMASTER_BASE_URL" default:"https://app.ticketmaster.com/discovery/v2/events.json"`
	TicketmasterAPIKey      string `envconfig:"TICKETMASTER_API_KEY" required:"true"`
	TicketmasterCity        string `envconfig:"TICKETMASTER_CITY" default:"Austin"`
	TicketmasterCountryCode string `envconfig:"TICKETMASTER_COUNTRY_CODE" default:"US"`
	TicketmasterPageSize    int    `envconfig:"TICKETMASTER_PAGE_SIZE" default:"50"`
	ProviderTimeoutSec      int    `envconfig:"PROVIDER_TIMEOUT_SEC" default:"15"`
	SeedDatabase            bool   `envconfig:"SEED_DATABASE" default:"false"`
	FetchOnStartup          bool   `envconfig:"FETCH_ON_STARTUP" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
