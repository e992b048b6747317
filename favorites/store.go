package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Store persists the user's favorite cities in a single local JSON file.
// It is opened and rewritten around each operation; there is no resident state.
type Store struct {
	path string
}

// favoritesFile is the on-disk format: {"favorites": ["London", ...]}
type favoritesFile struct {
	Favorites []string `json:"favorites"`
}

// NewStore creates a store backed by the given file path. The file does not
// need to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Normalize trims and title-cases a city name so "  new york" is stored
// as "New York".
func Normalize(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// Validate rejects blank or unreasonably sized city names.
func Validate(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(trimmed) > 100 {
		return fmt.Errorf("invalid city name %q", name)
	}
	return nil
}

// List returns the current ordered favorites. A missing or corrupt file reads
// as an empty list, never an error.
func (s *Store) List() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var file favoritesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil
	}

	// Drop blank entries from hand-edited files
	names := make([]string, 0, len(file.Favorites))
	for _, name := range file.Favorites {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	return names
}

// Add appends a city if it is not already present (case-insensitive) and
// persists the list. It reports whether the city was added.
func (s *Store) Add(name string) (bool, error) {
	if err := Validate(name); err != nil {
		return false, err
	}

	normalized := Normalize(name)
	names := s.List()
	for _, existing := range names {
		if strings.EqualFold(existing, normalized) {
			return false, nil
		}
	}

	names = append(names, normalized)
	if err := s.save(names); err != nil {
		return false, err
	}
	return true, nil
}

// Remove drops a city from the list (case-insensitive) and persists it.
// Removing a city that is not present is a no-op, not an error.
func (s *Store) Remove(name string) (bool, error) {
	target := strings.TrimSpace(name)
	names := s.List()

	for i, existing := range names {
		if strings.EqualFold(existing, target) {
			names = append(names[:i], names[i+1:]...)
			if err := s.save(names); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) save(names []string) error {
	data, err := json.MarshalIndent(favoritesFile{Favorites: names}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write favorites file: %w", err)
	}
	return nil
}
