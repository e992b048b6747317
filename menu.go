package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"weatherdash/display"
)

// interactive runs the prompt-driven menu used when no arguments are given.
func (a *app) interactive(stdin io.Reader) int {
	scanner := bufio.NewScanner(stdin)
	display.Banner(a.out)

	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "What would you like to do?")
		fmt.Fprintln(a.out, "  [1] 🌡️  Current weather for a city")
		fmt.Fprintln(a.out, "  [2] 📅 5-day forecast for a city")
		fmt.Fprintln(a.out, "  [3] ⭐ Manage favorite cities")
		fmt.Fprintln(a.out, "  [4] 🌍 Weather for all favorites")
		fmt.Fprintln(a.out, "  [5] ❌ Exit")

		choice, ok := a.prompt(scanner, "Enter your choice", "1")
		if !ok {
			return 0
		}

		switch choice {
		case "1":
			city, ok := a.prompt(scanner, "Enter city name", "London")
			if !ok {
				return 0
			}
			if a.showCurrent(city) == 0 && a.confirm(scanner, "Add this city to favorites?") {
				a.addFavorite(city)
			}
		case "2":
			city, ok := a.prompt(scanner, "Enter city name", "London")
			if !ok {
				return 0
			}
			a.showForecast(city)
		case "3":
			if !a.favoritesMenu(scanner) {
				return 0
			}
		case "4":
			a.weatherForFavorites()
		case "5":
			fmt.Fprintln(a.out, "Thanks for using Weather Dashboard! ☀️")
			return 0
		default:
			fmt.Fprintln(a.out, "Please choose 1-5.")
		}
	}
}

// favoritesMenu runs the favorites submenu. It reports false when input is
// exhausted, so the caller can stop too.
func (a *app) favoritesMenu(scanner *bufio.Scanner) bool {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "⭐ Favorites management")
		fmt.Fprintln(a.out, "  [1] 📋 List favorite cities")
		fmt.Fprintln(a.out, "  [2] ➕ Add a city")
		fmt.Fprintln(a.out, "  [3] ➖ Remove a city")
		fmt.Fprintln(a.out, "  [4] 🔙 Back to main menu")

		choice, ok := a.prompt(scanner, "Enter your choice", "1")
		if !ok {
			return false
		}

		switch choice {
		case "1":
			display.RenderFavorites(a.out, a.store.List())
		case "2":
			city, ok := a.prompt(scanner, "Enter city name to add", "")
			if !ok {
				return false
			}
			a.addFavorite(city)
		case "3":
			names := a.store.List()
			if len(names) == 0 {
				fmt.Fprintln(a.out, "No favorites to remove.")
				continue
			}
			display.RenderFavorites(a.out, names)
			city, ok := a.prompt(scanner, "Enter city name to remove", "")
			if !ok {
				return false
			}
			a.removeFavorite(city)
		case "4":
			return true
		default:
			fmt.Fprintln(a.out, "Please choose 1-4.")
		}
	}
}

// prompt reads one line of input. A blank entry falls back to the default;
// ok is false once input is exhausted.
func (a *app) prompt(scanner *bufio.Scanner, label, fallback string) (answer string, ok bool) {
	if fallback != "" {
		fmt.Fprintf(a.out, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(a.out, "%s: ", label)
	}
	if !scanner.Scan() {
		return "", false
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return fallback, true
	}
	return line, true
}

// confirm asks a yes/no question, defaulting to no.
func (a *app) confirm(scanner *bufio.Scanner, label string) bool {
	answer, ok := a.prompt(scanner, label+" (y/N)", "n")
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
