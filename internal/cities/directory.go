package cities

import (
	"fmt"
	"sort"
	"strings"

	"city-distance/internal/models"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Directory is an insertion-ordered, read-only list of cities with name lookup.
type Directory struct {
	cities []models.City
	// folded[i] holds the normalised name and country of cities[i].
	folded []foldedCity
	// MaxSuggestions caps the names offered when a lookup fails. Zero disables
	// suggestions.
	MaxSuggestions int
}

type foldedCity struct {
	name    string
	country string
}

func NewDirectory(list []models.City) *Directory {
	d := &Directory{
		cities:         list,
		folded:         make([]foldedCity, len(list)),
		MaxSuggestions: 3,
	}
	for i, c := range list {
		d.folded[i] = foldedCity{name: fold(c.Name), country: fold(c.Country)}
	}
	return d
}

func (d *Directory) Len() int { return len(d.cities) }

// All returns the cities in file order. The slice must not be modified.
func (d *Directory) All() []models.City { return d.cities }

// NotFoundError is returned when no city matches a query.
type NotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("City %s not found", e.Query)
	if len(e.Suggestions) > 0 {
		msg += "\nDid you mean: " + strings.Join(e.Suggestions, ", ") + "?"
	}
	return msg
}

// AmbiguousError is returned when more than one city matches a query.
type AmbiguousError struct {
	Query   string
	Matches []models.City
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Multiple cities found for %s:", e.Query)
	for _, c := range e.Matches {
		b.WriteString("\n")
		b.WriteString(c.String())
	}
	return b.String()
}

// Query is a parsed lookup: a city name optionally qualified by a country.
type Query struct {
	Name    string
	Country string
}

// ParseQuery splits "name/country". Only the first slash separates.
func ParseQuery(s string) Query {
	name, country, _ := strings.Cut(s, "/")
	return Query{Name: strings.TrimSpace(name), Country: strings.TrimSpace(country)}
}

// Find resolves a "name" or "name/country" query to exactly one city.
// Matching is exact and case-insensitive.
func (d *Directory) Find(raw string) (models.City, error) {
	q := ParseQuery(raw)
	name := fold(q.Name)
	country := fold(q.Country)

	var matches []models.City
	for i, f := range d.folded {
		if country != "" && f.country != country {
			continue
		}
		if f.name == name {
			matches = append(matches, d.cities[i])
		}
	}

	switch len(matches) {
	case 0:
		return models.City{}, &NotFoundError{Query: raw, Suggestions: d.suggest(name, country)}
	case 1:
		return matches[0], nil
	default:
		return models.City{}, &AmbiguousError{Query: raw, Matches: matches}
	}
}

// FindAll resolves every query in order and stops at the first failure.
func (d *Directory) FindAll(queries []string) ([]models.City, error) {
	found := make([]models.City, 0, len(queries))
	for _, q := range queries {
		c, err := d.Find(q)
		if err != nil {
			return nil, err
		}
		found = append(found, c)
	}
	return found, nil
}

// suggest returns up to MaxSuggestions distinct city names close to name. A
// candidate qualifies when its edit distance is at most a third of the query
// length, with a floor of two edits.
func (d *Directory) suggest(name, country string) []string {
	if d.MaxSuggestions <= 0 || name == "" {
		return nil
	}

	maxDist := len([]rune(name)) / 3
	if maxDist < 2 {
		maxDist = 2
	}

	type candidate struct {
		label string
		dist  int
	}
	seen := make(map[string]bool)
	var candidates []candidate
	for i, f := range d.folded {
		if country != "" && f.country != country {
			continue
		}
		dist := levenshtein.ComputeDistance(name, f.name)
		if dist > maxDist {
			continue
		}
		label := d.cities[i].String()
		if seen[label] {
			continue
		}
		seen[label] = true
		candidates = append(candidates, candidate{label: label, dist: dist})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].label < candidates[j].label
	})

	if len(candidates) > d.MaxSuggestions {
		candidates = candidates[:d.MaxSuggestions]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.label
	}
	return out
}

// fold normalises s for case-insensitive comparison. A Caser keeps state,
// so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}
