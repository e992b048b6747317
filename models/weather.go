package models

import (
	"time"
)

// WeatherData represents a single current-conditions reading for a city
type WeatherData struct {
	Provider    string    `json:"provider"`
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feelsLike"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	WindDeg     int       `json:"windDeg"`
	Pressure    float64   `json:"pressure"`
	Description string    `json:"description"`
	ConditionID int       `json:"conditionId"`
	Icon        string    `json:"icon"`
	Timestamp   time.Time `json:"timestamp"`
}
