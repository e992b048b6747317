package datasource

import (
	"context"
	"fmt"

	"weatherdash/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider so bulk lookups (the favorites sweep)
// stay inside the API's free-tier request budget.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedProvider creates a rate limited wrapper around a provider.
// rps is the maximum requests per second allowed (can be fractional for less
// than 1 request per second), burst is the maximum burst size allowed.
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetWeather fetches weather data, respecting rate limits
func (r *RateLimitedProvider) GetWeather(ctx context.Context, city string) (models.WeatherData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.WeatherData{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetWeather(ctx, city)
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, city string, days int) (models.ForecastData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.ForecastData{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.FetchForecast(ctx, city, days)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

// Verify that the rate limited type implements both interfaces
var _ Provider = (*RateLimitedProvider)(nil)
