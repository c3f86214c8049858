package cli

import (
	"fmt"
	"log/slog"

	"city-distance/internal/calculator"
	"city-distance/internal/cities"
	"city-distance/internal/models"
)

// query is one invocation's request, classified by argument shape.
type query struct {
	mode   models.Mode
	names  []string
	points [2]models.Coordinate
}

// parseQuery classifies positional arguments. Exactly four numbers are two
// coordinates; four arguments mixing numbers and names are malformed; any
// other list of two or more arguments names cities.
func parseQuery(args []string) (query, error) {
	if len(args) < 2 {
		return query{}, &UsageError{}
	}

	if len(args) == 4 {
		var nums [4]float64
		numeric := 0
		for i, a := range args {
			v, err := models.ParseDegrees(a)
			if err == nil {
				nums[i] = v
				numeric++
			}
		}
		switch {
		case numeric == 4:
			q := query{
				mode: models.ModeCoordinates,
				points: [2]models.Coordinate{
					{Lat: nums[0], Lon: nums[1]},
					{Lat: nums[2], Lon: nums[3]},
				},
			}
			for _, p := range q.points {
				if !p.Valid() {
					return query{}, &UsageError{Reason: fmt.Sprintf(
						"invalid coordinate %s: latitude must be within [-90, 90] and longitude within [-180, 180]", p)}
				}
			}
			return q, nil
		case numeric > 0:
			return query{}, &UsageError{Reason: fmt.Sprintf(
				"malformed coordinates %v: expected four numbers <lat1> <lon1> <lat2> <lon2>", args)}
		}
	}

	return query{mode: models.ModeCities, names: args}, nil
}

func (q query) evaluate(dir *cities.Directory, logger *slog.Logger) (*models.Report, error) {
	r := &models.Report{Mode: q.mode}

	switch q.mode {
	case models.ModeCoordinates:
		r.Points = []models.PointDistance{calculator.Between(q.points[0], q.points[1])}
		for _, p := range q.points {
			n, err := calculator.Nearest(p, dir.All())
			if err != nil {
				return nil, err
			}
			logger.Debug("nearest city", "point", p.String(), "city", n.City.String(), "km", n.Kilometers)
			r.Nearest = append(r.Nearest, n)
		}
	default:
		found, err := dir.FindAll(q.names)
		if err != nil {
			return nil, err
		}
		for i, c := range found {
			logger.Debug("city resolved", "query", q.names[i], "city", c.String(), "line", c.Line)
		}
		r.Distances = calculator.Pairwise(found)
	}

	return r, nil
}

func isNumber(s string) bool {
	_, err := models.ParseDegrees(s)
	return err == nil
}
