package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weatherdash/models"
)

// OpenWeatherMapProvider implements both WeatherProvider and ForecastSource interfaces
type OpenWeatherMapProvider struct {
	apiKey     string
	units      string
	baseURL    string
	httpClient *http.Client
}

// Ensure OpenWeatherMapProvider implements both interfaces
var _ Provider = (*OpenWeatherMapProvider)(nil)

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider.
// units is passed straight through as the API's units parameter.
func NewOpenWeatherMapProvider(apiKey, units string) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		units:   units,
		baseURL: "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// get issues one request against the given API path and maps the failure
// modes: a blank credential fails before any network call, a 404 means the
// city is unknown, a 401 means the key was rejected, and transport errors
// mean the service could not be reached.
func (p *OpenWeatherMapProvider) get(ctx context.Context, path, city string) ([]byte, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrConfiguration, EnvAPIKey)
	}

	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("units", p.units)

	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrServiceUnreachable, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, city)
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: API key rejected by the service", ErrConfiguration)
	default:
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}
}

// GetWeather fetches current weather for a city
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, city string) (models.WeatherData, error) {
	body, err := p.get(ctx, "/weather", city)
	if err != nil {
		return models.WeatherData{}, err
	}

	// Parse response
	var response struct {
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  int     `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   int     `json:"deg"`
		} `json:"wind"`
		Weather []struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.WeatherData{}, fmt.Errorf("failed to parse response: %w", err)
	}

	// Extract condition details if available
	description := ""
	icon := ""
	conditionID := 0
	if len(response.Weather) > 0 {
		description = response.Weather[0].Description
		icon = response.Weather[0].Icon
		conditionID = response.Weather[0].ID
	}

	// Format location
	formattedLocation := response.Name
	if response.Sys.Country != "" {
		formattedLocation = fmt.Sprintf("%s,%s", response.Name, response.Sys.Country)
	}

	return models.WeatherData{
		Provider:    p.Name(),
		Location:    formattedLocation,
		Temperature: response.Main.Temp,
		FeelsLike:   response.Main.FeelsLike,
		Humidity:    float64(response.Main.Humidity),
		WindSpeed:   response.Wind.Speed,
		WindDeg:     response.Wind.Deg,
		Pressure:    float64(response.Main.Pressure),
		Description: description,
		ConditionID: conditionID,
		Icon:        icon,
		Timestamp:   time.Now(),
	}, nil
}

// FetchForecast fetches forecast for a city for the specified number of days
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, city string, days int) (models.ForecastData, error) {
	// The 5-day forecast endpoint returns data in 3-hour steps
	body, err := p.get(ctx, "/forecast", city)
	if err != nil {
		return models.ForecastData{}, err
	}

	// Parse response
	var response struct {
		City struct {
			Name    string `json:"name"`
			Country string `json:"country"`
		} `json:"city"`
		List []struct {
			Main struct {
				Temp      float64 `json:"temp"`
				FeelsLike float64 `json:"feels_like"`
				Humidity  int     `json:"humidity"`
				Pressure  int     `json:"pressure"`
			} `json:"main"`
			Wind struct {
				Speed float64 `json:"speed"`
				Deg   int     `json:"deg"`
			} `json:"wind"`
			Weather []struct {
				ID          int    `json:"id"`
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
			Dt    int64  `json:"dt"`
			DtTxt string `json:"dt_txt"`
		} `json:"list"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.ForecastData{}, fmt.Errorf("failed to parse response: %w", err)
	}

	forecast := models.ForecastData{
		Provider:  p.Name(),
		Location:  fmt.Sprintf("%s,%s", response.City.Name, response.City.Country),
		Forecasts: []models.Forecast{},
		Updated:   time.Now(),
	}

	// Number of entries to include (8 entries per day, as they come in 3-hour intervals)
	maxEntries := days * 8
	if maxEntries > len(response.List) {
		maxEntries = len(response.List)
	}

	for i := 0; i < maxEntries; i++ {
		item := response.List[i]

		description := ""
		icon := ""
		conditionID := 0
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
			icon = item.Weather[0].Icon
			conditionID = item.Weather[0].ID
		}

		forecast.Forecasts = append(forecast.Forecasts, models.Forecast{
			Temperature: item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			Humidity:    float64(item.Main.Humidity),
			WindSpeed:   item.Wind.Speed,
			WindDeg:     item.Wind.Deg,
			Pressure:    float64(item.Main.Pressure),
			Description: description,
			ConditionID: conditionID,
			Icon:        icon,
			Timestamp:   time.Unix(item.Dt, 0),
			TimeLabel:   item.DtTxt,
		})
	}

	return forecast, nil
}
