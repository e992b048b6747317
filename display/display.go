package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weatherdash/models"
)

// Units selects the measurement system used when rendering readings.
// Values mirror the API's units parameter.
type Units string

const (
	Imperial Units = "imperial"
	Metric   Units = "metric"
)

// TempSuffix returns the display suffix for temperatures.
func (u Units) TempSuffix() string {
	if u == Metric {
		return "°C"
	}
	return "°F"
}

// WindSuffix returns the display suffix for wind speeds.
func (u Units) WindSuffix() string {
	if u == Metric {
		return "m/s"
	}
	return "mph"
}

// CToF converts Celsius to Fahrenheit.
func CToF(celsius float64) float64 {
	return celsius*9/5 + 32
}

// FToC converts Fahrenheit to Celsius.
func FToC(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

// FormatTemperature renders a temperature with one decimal and the unit suffix.
func FormatTemperature(temp float64, units Units) string {
	return fmt.Sprintf("%.1f%s", temp, units.TempSuffix())
}

// ConditionEmoji maps an OpenWeatherMap condition ID to an emoji.
// Condition groups: https://openweathermap.org/weather-conditions
func ConditionEmoji(id int) string {
	switch {
	case id >= 200 && id < 300: // thunderstorm
		return "⛈️"
	case id >= 300 && id < 400: // drizzle
		return "🌧️"
	case id == 511: // freezing rain
		return "🌨️"
	case id >= 500 && id < 600: // rain
		return "🌧️"
	case id >= 600 && id < 700: // snow
		return "❄️"
	case id >= 700 && id < 800: // fog, mist, haze
		return "🌫️"
	case id == 800: // clear
		return "☀️"
	case id == 801: // few clouds
		return "🌤️"
	case id == 802: // scattered clouds
		return "⛅"
	case id > 802 && id < 810: // broken/overcast clouds
		return "☁️"
	default:
		return "🌡️"
	}
}

// temperatureColor picks a color band for a temperature, hottest to coldest.
// Thresholds are in Fahrenheit; metric readings are converted first.
func temperatureColor(temp float64, units Units) *color.Color {
	fahrenheit := temp
	if units == Metric {
		fahrenheit = CToF(temp)
	}
	switch {
	case fahrenheit >= 86:
		return color.New(color.FgRed, color.Bold)
	case fahrenheit >= 68:
		return color.New(color.FgYellow, color.Bold)
	case fahrenheit >= 50:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}

// titleCase upper-cases each word of an API description ("light rain" -> "Light Rain").
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Banner writes the interactive-mode welcome banner.
func Banner(w io.Writer) {
	frame := color.New(color.FgCyan, color.Bold)
	title := color.New(color.FgWhite, color.Bold)

	frame.Fprintln(w, "╔══════════════════════════════════════╗")
	fmt.Fprintf(w, "%s  ☀️  %s  🌧️   %s\n",
		frame.Sprint("║"),
		title.Sprint("W E A T H E R   D A S H B O A R D"),
		frame.Sprint("║"))
	frame.Fprintln(w, "╚══════════════════════════════════════╝")
}

// RenderCurrent writes a current-conditions panel for one city.
func RenderCurrent(w io.Writer, data models.WeatherData, units Units) {
	heading := color.New(color.FgWhite, color.Bold)
	condition := color.New(color.FgCyan, color.Bold)
	tempStyle := temperatureColor(data.Temperature, units)

	heading.Fprintf(w, "Weather in %s\n", data.Location)
	fmt.Fprintf(w, "%s %s\n", ConditionEmoji(data.ConditionID), condition.Sprint(titleCase(data.Description)))
	fmt.Fprintf(w, "  Temperature: %s\n", tempStyle.Sprint(FormatTemperature(data.Temperature, units)))
	fmt.Fprintf(w, "  Feels like:  %s\n", FormatTemperature(data.FeelsLike, units))
	fmt.Fprintf(w, "  Humidity:    %.0f%%\n", data.Humidity)
	fmt.Fprintf(w, "  Wind:        %.1f %s\n", data.WindSpeed, units.WindSuffix())
}

// RenderForecast writes the 5-day forecast table, one row per day.
// Colors stay out of the cells so tabwriter's column widths line up.
func RenderForecast(w io.Writer, data models.ForecastData, units Units) {
	title := color.New(color.FgWhite, color.Bold)
	title.Fprintf(w, "📅 5-day forecast for %s\n", data.Location)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE/TIME\tTEMP\tFEELS LIKE\tCONDITIONS\tHUMIDITY\tWIND")
	for _, entry := range data.Daily(5) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s\t%.0f%%\t%.1f %s\n",
			entry.TimeLabel,
			FormatTemperature(entry.Temperature, units),
			FormatTemperature(entry.FeelsLike, units),
			ConditionEmoji(entry.ConditionID),
			titleCase(entry.Description),
			entry.Humidity,
			entry.WindSpeed,
			units.WindSuffix(),
		)
	}
	tw.Flush()
}

// RenderFavorites writes the numbered favorites listing.
func RenderFavorites(w io.Writer, names []string) {
	if len(names) == 0 {
		fmt.Fprintln(w, "No favorite cities saved yet.")
		fmt.Fprintln(w, "Use -add CITY to save one.")
		return
	}

	title := color.New(color.FgMagenta, color.Bold)
	title.Fprintln(w, "⭐ Favorite cities")
	for i, name := range names {
		fmt.Fprintf(w, "  %d. %s\n", i+1, name)
	}
}

// Errorf writes a user-facing failure line to w.
func Errorf(w io.Writer, format string, args ...interface{}) {
	prefix := color.New(color.FgRed, color.Bold).Sprint("Error:")
	fmt.Fprintf(w, "%s %s\n", prefix, strings.TrimSpace(fmt.Sprintf(format, args...)))
}
