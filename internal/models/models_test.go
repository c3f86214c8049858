package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDegrees(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"48.8566", 48.8566, false},
		{" -33.8688 ", -33.8688, false},
		{`"2.3522"`, 2.3522, false},
		{"52,52", 52.52, false},
		{"0", 0, false},
		{"", 0, true},
		{"  ", 0, true},
		{"north", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDegrees(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCoordinate_Valid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 90, Lon: 180}.Valid())
	assert.True(t, Coordinate{Lat: -90, Lon: -180}.Valid())
	assert.False(t, Coordinate{Lat: 90.1, Lon: 0}.Valid())
	assert.False(t, Coordinate{Lat: 0, Lon: -180.5}.Valid())
	assert.False(t, Coordinate{Lat: math.NaN(), Lon: 0}.Valid())
	assert.False(t, Coordinate{Lat: 0, Lon: math.Inf(1)}.Valid())
}

func TestStrings(t *testing.T) {
	c := City{Name: "Paris", Country: "France", Loc: Coordinate{Lat: 48.8566, Lon: 2.3522}}
	assert.Equal(t, "Paris, France", c.String())
	assert.Equal(t, "(48.8566, 2.3522)", c.Loc.String())
	assert.Equal(t, "(-12, 0.5)", Coordinate{Lat: -12, Lon: 0.5}.String())
}

func TestParseCityRecord(t *testing.T) {
	tests := []struct {
		name    string
		row     []string
		wantErr string
	}{
		{"valid", []string{"1", "Peru", "Lima", "-12.0464", "-77.0428", "9750000"}, ""},
		{"no population", []string{"1", "Peru", " Lima ", "-12.0464", "-77.0428"}, ""},
		{"too short", []string{"1", "Peru", "Lima", "-12.0464"}, "expected at least 5 fields"},
		{"bad latitude", []string{"1", "Peru", "Lima", "x", "-77.0428", "1"}, "latitude"},
		{"bad longitude", []string{"1", "Peru", "Lima", "-12", "", "1"}, "longitude"},
		{"out of range", []string{"1", "Peru", "Lima", "-120", "-77.0428", "1"}, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, err := ParseCityRecord(tt.row, 7)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Contains(t, err.Error(), "line 7")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Lima", city.Name)
			assert.Equal(t, "Peru", city.Country)
			assert.Equal(t, 7, city.Line)
			assert.InDelta(t, -77.0428, city.Loc.Lon, 1e-12)
		})
	}
}
