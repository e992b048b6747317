package datasource

import (
	"context"
	"errors"

	"weatherdash/models"
)

// Failure kinds surfaced to the CLI. Callers match them with errors.Is.
var (
	// ErrCityNotFound means the service does not know the requested city.
	ErrCityNotFound = errors.New("city not found")

	// ErrServiceUnreachable means the request never produced a usable response.
	ErrServiceUnreachable = errors.New("weather service unreachable")

	// ErrConfiguration means the API credential is missing or was rejected.
	// When the credential is missing it is returned before any network call.
	ErrConfiguration = errors.New("configuration error")
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current weather for a city
	GetWeather(ctx context.Context, city string) (models.WeatherData, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches forecast for a city for the specified number of days
	FetchForecast(ctx context.Context, city string, days int) (models.ForecastData, error)

	// Name returns the source's name
	Name() string
}

// Provider is implemented by sources that serve both current conditions and forecasts
type Provider interface {
	WeatherProvider
	ForecastSource
}
