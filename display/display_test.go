package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"weatherdash/models"
)

func init() {
	// Keep ANSI escapes out of test assertions
	color.NoColor = true
}

func TestConditionEmoji(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{211, "⛈️"}, // thunderstorm
		{301, "🌧️"}, // drizzle
		{500, "🌧️"}, // rain
		{511, "🌨️"}, // freezing rain
		{601, "❄️"}, // snow
		{741, "🌫️"}, // fog
		{800, "☀️"}, // clear
		{801, "🌤️"}, // few clouds
		{802, "⛅"},  // scattered clouds
		{804, "☁️"}, // overcast
		{0, "🌡️"},   // unknown
	}

	for _, tt := range tests {
		if got := ConditionEmoji(tt.id); got != tt.want {
			t.Errorf("ConditionEmoji(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFormatTemperature(t *testing.T) {
	if got := FormatTemperature(52.34, Imperial); got != "52.3°F" {
		t.Errorf("Expected '52.3°F', got %q", got)
	}
	if got := FormatTemperature(-1.0, Metric); got != "-1.0°C" {
		t.Errorf("Expected '-1.0°C', got %q", got)
	}
}

func TestUnitConversion(t *testing.T) {
	if got := CToF(100); got != 212 {
		t.Errorf("CToF(100) = %v, want 212", got)
	}
	if got := FToC(32); got != 0 {
		t.Errorf("FToC(32) = %v, want 0", got)
	}
}

func TestRenderCurrent(t *testing.T) {
	var buf bytes.Buffer
	data := models.WeatherData{
		Location:    "London,GB",
		Temperature: 52.3,
		FeelsLike:   49.8,
		Humidity:    81,
		WindSpeed:   9.2,
		Description: "light rain",
		ConditionID: 500,
	}

	RenderCurrent(&buf, data, Imperial)
	out := buf.String()

	for _, want := range []string{
		"Weather in London,GB",
		"Light Rain",
		"52.3°F",
		"49.8°F",
		"81%",
		"9.2 mph",
		"🌧️",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderForecast(t *testing.T) {
	forecasts := make([]models.Forecast, 40)
	for i := range forecasts {
		forecasts[i] = models.Forecast{
			Temperature: 50,
			Description: "clear sky",
			ConditionID: 800,
			TimeLabel:   "2024-03-01 00:00:00",
			Timestamp:   time.Now(),
		}
	}
	data := models.ForecastData{Location: "London,GB", Forecasts: forecasts}

	var buf bytes.Buffer
	RenderForecast(&buf, data, Metric)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// title + header + 5 daily rows
	if len(lines) != 7 {
		t.Fatalf("Expected 7 output lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "London,GB") {
		t.Errorf("Expected title to name the city, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "°C") {
		t.Errorf("Expected metric temperatures, got %q", lines[2])
	}
}

func TestRenderFavoritesEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderFavorites(&buf, nil)

	if !strings.Contains(buf.String(), "No favorite cities saved yet.") {
		t.Errorf("Expected empty-list message, got %q", buf.String())
	}
}

func TestRenderFavorites(t *testing.T) {
	var buf bytes.Buffer
	RenderFavorites(&buf, []string{"London", "Tokyo"})

	out := buf.String()
	if !strings.Contains(out, "1. London") || !strings.Contains(out, "2. Tokyo") {
		t.Errorf("Expected numbered listing, got %q", out)
	}
}
