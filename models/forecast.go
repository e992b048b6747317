package models

import (
	"time"
)

// Forecast represents a single forecast point with weather conditions at a specific time
type Forecast struct {
	Temperature float64   `json:"temperature"` // unit follows the requested units
	FeelsLike   float64   `json:"feelsLike"`   // perceived temperature
	Humidity    float64   `json:"humidity"`    // percentage
	WindSpeed   float64   `json:"windSpeed"`   // mph or m/s, per requested units
	WindDeg     int       `json:"windDeg"`     // wind direction in degrees
	Pressure    float64   `json:"pressure"`    // in hPa
	Description string    `json:"description"` // short text description
	ConditionID int       `json:"conditionId"` // OpenWeatherMap condition code
	Icon        string    `json:"icon"`        // icon code or URL
	Timestamp   time.Time `json:"timestamp"`   // time this forecast is for
	TimeLabel   string    `json:"timeLabel"`   // human-readable time from the API
}

// ForecastData represents weather forecast data for a location
type ForecastData struct {
	Provider  string     `json:"provider"`  // weather data provider name
	Location  string     `json:"location"`  // location name
	Forecasts []Forecast `json:"forecasts"` // ordered list of forecast points
	Updated   time.Time  `json:"updated"`   // when this forecast was fetched
}

// entriesPerDay is how many 3-hourly forecast points cover one day.
const entriesPerDay = 8

// Daily reduces the 3-hourly forecast list to one entry per day, up to n days.
// A full 5-day response yields exactly five entries; shorter responses yield
// fewer, never an error.
func (f ForecastData) Daily(n int) []Forecast {
	daily := make([]Forecast, 0, n)
	for i := 0; i < len(f.Forecasts) && len(daily) < n; i += entriesPerDay {
		daily = append(daily, f.Forecasts[i])
	}
	return daily
}
