package calculator

import (
	"errors"

	"city-distance/internal/models"
)

var ErrNoCities = errors.New("no cities to search")

// Pairwise returns the distance for every unordered pair of cities, in
// argument order: (0,1), (0,2), ..., (1,2), ...
func Pairwise(cities []models.City) []models.CityDistance {
	if len(cities) < 2 {
		return nil
	}
	legs := make([]models.CityDistance, 0, len(cities)*(len(cities)-1)/2)
	for i := 0; i < len(cities); i++ {
		for j := i + 1; j < len(cities); j++ {
			legs = append(legs, models.CityDistance{
				From:       cities[i],
				To:         cities[j],
				Kilometers: Distance(cities[i].Loc, cities[j].Loc),
			})
		}
	}
	return legs
}

// Between returns the distance between two bare coordinates.
func Between(from, to models.Coordinate) models.PointDistance {
	return models.PointDistance{From: from, To: to, Kilometers: Distance(from, to)}
}

// Nearest scans every city and returns the closest one to p. Ties go to the
// city that appears first.
func Nearest(p models.Coordinate, cities []models.City) (models.NearestCity, error) {
	if len(cities) == 0 {
		return models.NearestCity{}, ErrNoCities
	}

	nearestIdx := 0
	minDist := Distance(p, cities[0].Loc)
	for idx := 1; idx < len(cities); idx++ {
		d := Distance(p, cities[idx].Loc)
		if d < minDist {
			minDist = d
			nearestIdx = idx
		}
	}

	return models.NearestCity{
		Point:      p,
		City:       cities[nearestIdx],
		Kilometers: minDist,
	}, nil
}
