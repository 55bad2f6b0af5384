// Package birthfile persists birth data as a small TOML document, so a
// chart can be recomputed from a file instead of a flag list. The watch
// subcommand recomputes whenever the file changes.
package birthfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/navagraha/jyotish/internal/kundali"
)

// DefaultPath is the conventional location for the birth file.
const DefaultPath = "birth.toml"

// File is the on-disk shape of a birth record:
//
//	date = "1991-06-18"
//	time = "07:10"
//	timezone = "Asia/Kolkata"
//	latitude = 10.8
//	longitude = 76.97
type File struct {
	Date      string  `toml:"date"`
	Time      string  `toml:"time"`
	Timezone  string  `toml:"timezone"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

// Load reads a birth record from the given path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading birth file: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing birth file: %w", err)
	}
	return &f, nil
}

// Save writes the birth record to the given path, creating parent
// directories as needed.
func Save(path string, f *File) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling birth file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing birth file: %w", err)
	}
	return nil
}

// BirthData resolves the record into validated birth data. The time
// field accepts HH:MM or HH:MM:SS; an empty timezone means UTC.
func (f *File) BirthData() (kundali.BirthData, error) {
	zone := f.Timezone
	if zone == "" {
		zone = "UTC"
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return kundali.BirthData{}, fmt.Errorf("birth file timezone: %w", err)
	}

	layout := "2006-01-02 15:04"
	if len(f.Time) == len("15:04:05") {
		layout = "2006-01-02 15:04:05"
	}
	instant, err := time.ParseInLocation(layout, f.Date+" "+f.Time, loc)
	if err != nil {
		return kundali.BirthData{}, fmt.Errorf("birth file instant: %w", err)
	}
	return kundali.NewBirthData(instant, f.Latitude, f.Longitude)
}
