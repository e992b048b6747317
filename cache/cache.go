package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"weatherdash/datasource"
	"weatherdash/models"
)

// CachedWeatherSource wraps a WeatherProvider and serves repeated lookups of
// the same city from memory until the entry expires. Interactive sessions and
// favorites sweeps with duplicate cities hit the network only once per city.
type CachedWeatherSource struct {
	source         datasource.WeatherProvider
	cache          map[string]cacheEntry
	mutex          sync.RWMutex
	cacheDuration  time.Duration
	cacheHitCount  int
	cacheMissCount int
}

// cacheEntry represents a cached weather reading with its timestamp
type cacheEntry struct {
	Data      models.WeatherData
	Timestamp time.Time
}

// NewCachedWeatherSource creates a new cached wrapper around a weather provider
func NewCachedWeatherSource(source datasource.WeatherProvider, cacheDuration time.Duration) *CachedWeatherSource {
	return &CachedWeatherSource{
		source:        source,
		cache:         make(map[string]cacheEntry),
		cacheDuration: cacheDuration,
	}
}

// Name returns the name of the underlying provider with [Cached] suffix
func (c *CachedWeatherSource) Name() string {
	return c.source.Name() + " [Cached]"
}

// cacheKey normalizes a city name so "London" and " london " share an entry.
func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// GetWeather fetches current weather, using the cache when available.
// Failed lookups are never cached.
func (c *CachedWeatherSource) GetWeather(ctx context.Context, city string) (models.WeatherData, error) {
	key := cacheKey(city)

	c.mutex.RLock()
	entry, found := c.cache[key]
	c.mutex.RUnlock()

	if found && time.Since(entry.Timestamp) < c.cacheDuration {
		c.mutex.Lock()
		c.cacheHitCount++
		c.mutex.Unlock()
		return entry.Data, nil
	}

	c.mutex.Lock()
	c.cacheMissCount++
	c.mutex.Unlock()

	data, err := c.source.GetWeather(ctx, city)
	if err != nil {
		return models.WeatherData{}, err
	}

	c.mutex.Lock()
	c.cache[key] = cacheEntry{
		Data:      data,
		Timestamp: time.Now(),
	}
	c.mutex.Unlock()

	return data, nil
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedWeatherSource) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount
}

// Ensure CachedWeatherSource implements the WeatherProvider interface
var _ datasource.WeatherProvider = (*CachedWeatherSource)(nil)
