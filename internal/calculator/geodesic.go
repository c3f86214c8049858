package calculator

import (
	"city-distance/internal/models"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the IUGG mean Earth radius in kilometres.
const EarthRadiusKm = 6371.0088

// Distance returns the great-circle distance between two points in kilometres.
func Distance(a, b models.Coordinate) float64 {
	from := s2.LatLngFromDegrees(a.Lat, a.Lon)
	to := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return from.Distance(to).Radians() * EarthRadiusKm
}
