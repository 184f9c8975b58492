// Package config loads the runtime configuration from environment
// variables: the Google Apps Script endpoints that submissions are forwarded
// to, and the forwarding timeout.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	CurtainsSheetURL           string `env:"CURTAINS_SHEET_URL"`
	IndoorBlindsSheetURL       string `env:"INDOOR_BLINDS_SHEET_URL"`
	PlantationShuttersSheetURL string `env:"PLANTATION_SHUTTERS_SHEET_URL"`
	RollerShuttersSheetURL     string `env:"ROLLER_SHUTTERS_SHEET_URL"`
	SecurityDoorsSheetURL      string `env:"SECURITY_DOORS_SHEET_URL"`

	SubmitTimeout time.Duration `env:"SUBMIT_TIMEOUT" envDefault:"15s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// SheetURL returns the spreadsheet endpoint for a product form slug.
// Security doors share the roller shutters spreadsheet when no dedicated
// endpoint is configured.
func (c *Config) SheetURL(slug string) string {
	switch slug {
	case "curtains":
		return c.CurtainsSheetURL
	case "indoor-blinds":
		return c.IndoorBlindsSheetURL
	case "plantation-shutters":
		return c.PlantationShuttersSheetURL
	case "roller-shutters":
		return c.RollerShuttersSheetURL
	case "security-doors":
		if c.SecurityDoorsSheetURL != "" {
			return c.SecurityDoorsSheetURL
		}
		return c.RollerShuttersSheetURL
	default:
		return ""
	}
}
