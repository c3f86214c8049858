package models

import (
	"fmt"
	"strconv"
	"strings"
)

type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Valid reports whether the coordinate lies within the latitude and
// longitude ranges.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%s, %s)", FormatDegrees(c.Lat), FormatDegrees(c.Lon))
}

type City struct {
	ID         string     `json:"id" yaml:"id"`
	Country    string     `json:"country" yaml:"country"`
	Name       string     `json:"name" yaml:"name"`
	Loc        Coordinate `json:"location" yaml:"location"`
	Population string     `json:"population,omitempty" yaml:"population,omitempty"`
	// Line is the 1-based row the city was read from.
	Line int `json:"-" yaml:"-"`
}

func (c City) String() string {
	return fmt.Sprintf("%s, %s", c.Name, c.Country)
}

// ParseDegrees parses a latitude or longitude. A decimal comma is accepted
// for files exported from locales that use one.
func ParseDegrees(val string) (float64, error) {
	val = strings.Trim(strings.TrimSpace(val), `"`)
	val = strings.ReplaceAll(val, ",", ".")
	if val == "" {
		return 0, fmt.Errorf("empty coordinate")
	}
	return strconv.ParseFloat(val, 64)
}

// FormatDegrees renders a coordinate component with the shortest exact
// representation.
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Field positions of a city record: index;country;name;lat;lon;population.
const (
	colID = iota
	colCountry
	colName
	colLat
	colLon
	colPopulation
)

// minCols is the number of fields a record needs. Spreadsheet rows drop
// trailing empty cells, so population may be missing.
const minCols = colLon + 1

// ParseCityRecord converts one index;country;name;lat;lon;population record
// into a City. line is used for error messages and kept on the city.
func ParseCityRecord(row []string, line int) (City, error) {
	if len(row) < minCols {
		return City{}, fmt.Errorf("line %d: expected at least %d fields, got %d", line, minCols, len(row))
	}

	lat, err := ParseDegrees(row[colLat])
	if err != nil {
		return City{}, fmt.Errorf("line %d: latitude %q: %w", line, row[colLat], err)
	}
	lon, err := ParseDegrees(row[colLon])
	if err != nil {
		return City{}, fmt.Errorf("line %d: longitude %q: %w", line, row[colLon], err)
	}

	loc := Coordinate{Lat: lat, Lon: lon}
	if !loc.Valid() {
		return City{}, fmt.Errorf("line %d: coordinate %s out of range", line, loc)
	}

	city := City{
		ID:      strings.TrimSpace(row[colID]),
		Country: strings.TrimSpace(row[colCountry]),
		Name:    strings.TrimSpace(row[colName]),
		Loc:     loc,
		Line:    line,
	}
	if len(row) > colPopulation {
		city.Population = strings.TrimSpace(row[colPopulation])
	}
	return city, nil
}

type CityDistance struct {
	From       City    `json:"from" yaml:"from"`
	To         City    `json:"to" yaml:"to"`
	Kilometers float64 `json:"km" yaml:"km"`
}

type PointDistance struct {
	From       Coordinate `json:"from" yaml:"from"`
	To         Coordinate `json:"to" yaml:"to"`
	Kilometers float64    `json:"km" yaml:"km"`
}

type NearestCity struct {
	Point      Coordinate `json:"point" yaml:"point"`
	City       City       `json:"city" yaml:"city"`
	Kilometers float64    `json:"km" yaml:"km"`
}

type Mode string

const (
	ModeCities      Mode = "cities"
	ModeCoordinates Mode = "coordinates"
)

// Report is the outcome of one query.
type Report struct {
	Mode      Mode            `json:"mode" yaml:"mode"`
	Distances []CityDistance  `json:"distances,omitempty" yaml:"distances,omitempty"`
	Points    []PointDistance `json:"points,omitempty" yaml:"points,omitempty"`
	Nearest   []NearestCity   `json:"nearest,omitempty" yaml:"nearest,omitempty"`
}
