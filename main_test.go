package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"weatherdash/datasource"
	"weatherdash/display"
	"weatherdash/favorites"
	"weatherdash/models"
)

func init() {
	// Keep ANSI escapes out of test assertions
	color.NoColor = true
}

// stubProvider serves canned data or a canned error for app-level tests.
type stubProvider struct {
	calls int
	err   error
}

func (s *stubProvider) Name() string { return "Stub" }

func (s *stubProvider) GetWeather(ctx context.Context, city string) (models.WeatherData, error) {
	s.calls++
	if s.err != nil {
		return models.WeatherData{}, s.err
	}
	return models.WeatherData{
		Location:    city + ",XX",
		Temperature: 60,
		Description: "clear sky",
		ConditionID: 800,
	}, nil
}

func (s *stubProvider) FetchForecast(ctx context.Context, city string, days int) (models.ForecastData, error) {
	s.calls++
	if s.err != nil {
		return models.ForecastData{}, s.err
	}
	forecasts := make([]models.Forecast, days*8)
	for i := range forecasts {
		forecasts[i] = models.Forecast{
			Temperature: 55,
			Description: "clear sky",
			ConditionID: 800,
			TimeLabel:   "2024-03-01 00:00:00",
		}
	}
	return models.ForecastData{Location: city + ",XX", Forecasts: forecasts}, nil
}

func newTestApp(t *testing.T, provider *stubProvider) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	a := &app{
		weather:   provider,
		forecasts: provider,
		store:     favorites.NewStore(filepath.Join(t.TempDir(), "favorites.json")),
		units:     display.Imperial,
		out:       out,
		errOut:    errOut,
	}
	return a, out, errOut
}

func TestShowCurrent(t *testing.T) {
	a, out, _ := newTestApp(t, &stubProvider{})

	if rc := a.showCurrent("London"); rc != 0 {
		t.Fatalf("Expected exit code 0, got %d", rc)
	}
	if !strings.Contains(out.String(), "London,XX") {
		t.Errorf("Expected output to name the city, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "60.0°F") {
		t.Errorf("Expected imperial temperature, got:\n%s", out.String())
	}
}

func TestShowCurrentCityNotFound(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("%w: %q", datasource.ErrCityNotFound, "Nowhereville")}
	a, out, errOut := newTestApp(t, provider)

	if rc := a.showCurrent("Nowhereville"); rc != 1 {
		t.Fatalf("Expected exit code 1, got %d", rc)
	}
	if !strings.Contains(errOut.String(), "not found") {
		t.Errorf("Expected not-found message on stderr, got %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("Expected no stdout output on failure, got %q", out.String())
	}
}

func TestShowForecast(t *testing.T) {
	a, out, _ := newTestApp(t, &stubProvider{})

	if rc := a.showForecast("London"); rc != 0 {
		t.Fatalf("Expected exit code 0, got %d", rc)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 7 { // title + header + 5 rows
		t.Errorf("Expected 7 forecast lines, got %d:\n%s", len(lines), out.String())
	}
}

func TestWeatherForFavoritesEmpty(t *testing.T) {
	a, out, _ := newTestApp(t, &stubProvider{})

	if rc := a.weatherForFavorites(); rc != 0 {
		t.Fatalf("Expected exit code 0 for empty favorites, got %d", rc)
	}
	if !strings.Contains(out.String(), "No favorite cities saved yet.") {
		t.Errorf("Expected empty-favorites message, got %q", out.String())
	}
}

func TestWeatherForFavoritesSweep(t *testing.T) {
	provider := &stubProvider{}
	a, out, _ := newTestApp(t, provider)

	for _, name := range []string{"London", "Tokyo"} {
		if _, err := a.store.Add(name); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
	}

	if rc := a.weatherForFavorites(); rc != 0 {
		t.Fatalf("Expected exit code 0, got %d", rc)
	}
	if provider.calls != 2 {
		t.Errorf("Expected 2 lookups, got %d", provider.calls)
	}
	if !strings.Contains(out.String(), "London,XX") || !strings.Contains(out.String(), "Tokyo,XX") {
		t.Errorf("Expected both cities in output, got:\n%s", out.String())
	}
}

func TestWeatherForFavoritesReportsFailure(t *testing.T) {
	provider := &stubProvider{err: datasource.ErrServiceUnreachable}
	a, _, errOut := newTestApp(t, provider)

	if _, err := a.store.Add("London"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if rc := a.weatherForFavorites(); rc != 1 {
		t.Fatalf("Expected exit code 1 when a lookup fails, got %d", rc)
	}
	if !strings.Contains(errOut.String(), "could not reach the weather service") {
		t.Errorf("Expected unreachable message, got %q", errOut.String())
	}
}

func TestRunFavoritesLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-favorites-file", path, "-add", "paris"}, `Added "Paris" to favorites.`},
		{[]string{"-favorites-file", path, "-add", "PARIS"}, `"Paris" is already in favorites.`},
		{[]string{"-favorites-file", path, "-list"}, "1. Paris"},
		{[]string{"-favorites-file", path, "-remove", "paris"}, `Removed "paris" from favorites.`},
		{[]string{"-favorites-file", path, "-remove", "Atlantis"}, `"Atlantis" was not in favorites.`},
		{[]string{"-favorites-file", path, "-list"}, "No favorite cities saved yet."},
	}

	for _, tc := range cases {
		out := &bytes.Buffer{}
		errOut := &bytes.Buffer{}
		if rc := run(tc.args, out, errOut, strings.NewReader("")); rc != 0 {
			t.Fatalf("run(%v) exited %d, stderr: %s", tc.args, rc, errOut.String())
		}
		if !strings.Contains(out.String(), tc.want) {
			t.Errorf("run(%v): expected output to contain %q, got %q", tc.args, tc.want, out.String())
		}
	}
}

func TestRunMissingAPIKey(t *testing.T) {
	t.Setenv(datasource.EnvAPIKey, "")
	t.Setenv(datasource.EnvFavoritesFile, filepath.Join(t.TempDir(), "favorites.json"))

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	if rc := run([]string{"London"}, out, errOut, strings.NewReader("")); rc != 1 {
		t.Fatalf("Expected exit code 1 without an API key, got %d", rc)
	}
	if !strings.Contains(errOut.String(), datasource.EnvAPIKey) {
		t.Errorf("Expected configuration message naming %s, got %q", datasource.EnvAPIKey, errOut.String())
	}
}

func TestRunRejectsBadUnits(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	if rc := run([]string{"-units", "kelvin", "London"}, out, errOut, strings.NewReader("")); rc != 1 {
		t.Fatalf("Expected exit code 1 for bad units, got %d", rc)
	}
	if !strings.Contains(errOut.String(), "kelvin") {
		t.Errorf("Expected units error, got %q", errOut.String())
	}
}

func TestInteractiveExit(t *testing.T) {
	t.Setenv(datasource.EnvFavoritesFile, filepath.Join(t.TempDir(), "favorites.json"))

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	if rc := run(nil, out, errOut, strings.NewReader("5\n")); rc != 0 {
		t.Fatalf("Expected clean exit from the menu, got %d, stderr: %s", rc, errOut.String())
	}
	if !strings.Contains(out.String(), "W E A T H E R") {
		t.Errorf("Expected welcome banner, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Thanks for using Weather Dashboard!") {
		t.Errorf("Expected goodbye message, got:\n%s", out.String())
	}
}

func TestInteractiveFavoritesFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	t.Setenv(datasource.EnvFavoritesFile, path)

	// Menu: favorites submenu -> add Paris -> list -> back -> exit
	input := "3\n2\nParis\n1\n4\n5\n"
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	if rc := run(nil, out, errOut, strings.NewReader(input)); rc != 0 {
		t.Fatalf("Expected exit code 0, got %d, stderr: %s", rc, errOut.String())
	}
	if !strings.Contains(out.String(), `Added "Paris" to favorites.`) {
		t.Errorf("Expected add confirmation, got:\n%s", out.String())
	}

	names := favorites.NewStore(path).List()
	if len(names) != 1 || names[0] != "Paris" {
		t.Errorf("Expected Paris persisted, got %v", names)
	}
}

func TestInteractiveEOF(t *testing.T) {
	t.Setenv(datasource.EnvFavoritesFile, filepath.Join(t.TempDir(), "favorites.json"))

	out := &bytes.Buffer{}
	if rc := run(nil, out, &bytes.Buffer{}, strings.NewReader("")); rc != 0 {
		t.Fatalf("Expected clean exit at EOF, got %d", rc)
	}
}
