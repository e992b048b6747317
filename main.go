package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"weatherdash/cache"
	"weatherdash/datasource"
	"weatherdash/display"
	"weatherdash/favorites"

	"github.com/joho/godotenv"
)

const (
	lookupTimeout = 30 * time.Second
	cacheDuration = 5 * time.Minute
	forecastDays  = 5

	// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second.
	// Allow bursts of up to 5 requests.
	apiRequestsPerSecond = 1.0
	apiBurst             = 5
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Stdin))
}

// run parses the invocation and dispatches one action. It returns the
// process exit code: 0 on success, 1 for any reported failure.
func run(args []string, stdout, stderr io.Writer, stdin io.Reader) int {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	flags := flag.NewFlagSet("weatherdash", flag.ContinueOnError)
	flags.SetOutput(stderr)
	city := flags.String("city", "", "city name to get weather for (e.g. 'London' or 'New York,US')")
	forecast := flags.Bool("forecast", false, "show the 5-day forecast instead of current weather")
	addFavorite := flags.String("add", "", "add a city to favorites")
	removeFavorite := flags.String("remove", "", "remove a city from favorites")
	listFavorites := flags.Bool("list", false, "list all saved favorite cities")
	showFavorites := flags.Bool("favorites", false, "show weather for all favorite cities")
	units := flags.String("units", "", "measurement units: imperial or metric")
	favoritesFile := flags.String("favorites-file", "", "path to the favorites file")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: weatherdash [flags] [CITY]")
		fmt.Fprintln(stderr, "Get weather information from your terminal. Run without arguments for the interactive menu.")
		fmt.Fprintln(stderr)
		flags.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Examples:")
		fmt.Fprintln(stderr, "  weatherdash London             current weather for London")
		fmt.Fprintln(stderr, "  weatherdash -forecast London   5-day forecast")
		fmt.Fprintln(stderr, "  weatherdash -add Paris         add Paris to favorites")
		fmt.Fprintln(stderr, "  weatherdash -list              list favorite cities")
		fmt.Fprintln(stderr, "  weatherdash -favorites         weather for all favorites")
	}
	if err := flags.Parse(args); err != nil {
		return 1
	}

	config, err := datasource.LoadConfig()
	if err != nil {
		display.Errorf(stderr, "%v", err)
		return 1
	}
	if *units != "" {
		if err := datasource.ValidateUnits(*units); err != nil {
			display.Errorf(stderr, "%v", err)
			return 1
		}
		config.Units = *units
	}
	if *favoritesFile != "" {
		config.FavoritesFile = *favoritesFile
	}

	a := newApp(config, stdout, stderr)

	switch {
	case *addFavorite != "":
		return a.addFavorite(*addFavorite)
	case *removeFavorite != "":
		return a.removeFavorite(*removeFavorite)
	case *listFavorites:
		display.RenderFavorites(a.out, a.store.List())
		return 0
	case *showFavorites:
		return a.weatherForFavorites()
	}

	// Positional city wins over the -city flag
	target := flags.Arg(0)
	if target == "" {
		target = *city
	}
	if target != "" {
		if *forecast {
			return a.showForecast(target)
		}
		return a.showCurrent(target)
	}

	// No arguments at all launches the interactive menu
	if len(args) == 0 {
		return a.interactive(stdin)
	}

	flags.Usage()
	return 0
}

// app wires the provider stack and favorites store for one invocation.
type app struct {
	weather   datasource.WeatherProvider
	forecasts datasource.ForecastSource
	store     *favorites.Store
	units     display.Units
	out       io.Writer
	errOut    io.Writer
}

// newApp builds the API client stack: OpenWeatherMap behind the free-tier
// rate limit, with current-conditions lookups cached for the life of the run.
func newApp(config *datasource.Config, out, errOut io.Writer) *app {
	owm := datasource.NewOpenWeatherMapProvider(config.APIKey, config.Units)
	limited := datasource.NewRateLimitedProvider(owm, apiRequestsPerSecond, apiBurst)

	return &app{
		weather:   cache.NewCachedWeatherSource(limited, cacheDuration),
		forecasts: limited,
		store:     favorites.NewStore(config.FavoritesFile),
		units:     display.Units(config.Units),
		out:       out,
		errOut:    errOut,
	}
}

func (a *app) lookupContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), lookupTimeout)
}

func (a *app) showCurrent(city string) int {
	ctx, cancel := a.lookupContext()
	defer cancel()

	data, err := a.weather.GetWeather(ctx, city)
	if err != nil {
		return a.reportError(city, err)
	}
	display.RenderCurrent(a.out, data, a.units)
	return 0
}

func (a *app) showForecast(city string) int {
	ctx, cancel := a.lookupContext()
	defer cancel()

	data, err := a.forecasts.FetchForecast(ctx, city, forecastDays)
	if err != nil {
		return a.reportError(city, err)
	}
	display.RenderForecast(a.out, data, a.units)
	return 0
}

func (a *app) addFavorite(name string) int {
	added, err := a.store.Add(name)
	if err != nil {
		display.Errorf(a.errOut, "%v", err)
		return 1
	}
	if added {
		fmt.Fprintf(a.out, "Added %q to favorites.\n", favorites.Normalize(name))
	} else {
		fmt.Fprintf(a.out, "%q is already in favorites.\n", favorites.Normalize(name))
	}
	return 0
}

func (a *app) removeFavorite(name string) int {
	removed, err := a.store.Remove(name)
	if err != nil {
		display.Errorf(a.errOut, "%v", err)
		return 1
	}
	if removed {
		fmt.Fprintf(a.out, "Removed %q from favorites.\n", name)
	} else {
		fmt.Fprintf(a.out, "%q was not in favorites.\n", name)
	}
	return 0
}

// weatherForFavorites fetches current conditions for every saved city.
// One failed city does not stop the sweep but the run still exits non-zero.
func (a *app) weatherForFavorites() int {
	names := a.store.List()
	if len(names) == 0 {
		fmt.Fprintln(a.out, "No favorite cities saved yet.")
		return 0
	}

	rc := 0
	for _, name := range names {
		if a.showCurrent(name) != 0 {
			rc = 1
		}
		fmt.Fprintln(a.out)
	}
	return rc
}

// reportError converts an API failure into a user-facing message on stderr.
func (a *app) reportError(city string, err error) int {
	switch {
	case errors.Is(err, datasource.ErrCityNotFound):
		display.Errorf(a.errOut, "city %q not found", city)
	case errors.Is(err, datasource.ErrServiceUnreachable):
		display.Errorf(a.errOut, "could not reach the weather service: %v", err)
	default:
		display.Errorf(a.errOut, "%v", err)
	}
	return 1
}
