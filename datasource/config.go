package datasource

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables read at startup. The API key is the only required one.
const (
	EnvAPIKey        = "OPENWEATHERMAP_API_KEY"
	EnvUnits         = "WEATHER_UNITS"
	EnvFavoritesFile = "WEATHERDASH_FAVORITES"
)

// Supported values for the units setting.
const (
	UnitsImperial = "imperial"
	UnitsMetric   = "metric"
)

// Config represents the application configuration
type Config struct {
	APIKey        string
	Units         string
	FavoritesFile string
}

// LoadConfig builds a configuration from environment variables, applying
// defaults for everything but the API key. A missing key is not an error
// here: favorites-only actions must work without one, so the provider
// rejects it at lookup time instead.
func LoadConfig() (*Config, error) {
	config := &Config{
		APIKey:        strings.TrimSpace(os.Getenv(EnvAPIKey)),
		Units:         strings.ToLower(strings.TrimSpace(os.Getenv(EnvUnits))),
		FavoritesFile: os.Getenv(EnvFavoritesFile),
	}

	if config.Units == "" {
		config.Units = UnitsImperial
	}
	if err := ValidateUnits(config.Units); err != nil {
		return nil, err
	}

	if config.FavoritesFile == "" {
		config.FavoritesFile = "favorites.json"
	}

	return config, nil
}

// ValidateUnits rejects anything other than the two supported unit systems.
func ValidateUnits(units string) error {
	if units != UnitsImperial && units != UnitsMetric {
		return fmt.Errorf("%w: unsupported units %q (use %q or %q)",
			ErrConfiguration, units, UnitsImperial, UnitsMetric)
	}
	return nil
}
