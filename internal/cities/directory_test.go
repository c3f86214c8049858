package cities

import (
	"errors"
	"strings"
	"testing"

	"city-distance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory(t *testing.T) *Directory {
	t.Helper()
	list, err := ParseCSV(strings.NewReader(`1;France;Paris;48.8566;2.3522;2148000
2;Germany;Berlin;52.52;13.405;3645000
3;United States;Paris;33.6609;-95.5555;24171
4;Brazil;São Paulo;-23.5505;-46.6333;12330000
5;Germany;Munich;48.1351;11.582;1472000
6;Germany;Münster;51.9607;7.6261;315000
`))
	require.NoError(t, err)
	return NewDirectory(list)
}

func TestParseQuery(t *testing.T) {
	assert.Equal(t, Query{Name: "Paris"}, ParseQuery("Paris"))
	assert.Equal(t, Query{Name: "Paris", Country: "France"}, ParseQuery(" Paris / France "))
	assert.Equal(t, Query{Name: "a", Country: "b/c"}, ParseQuery("a/b/c"))
}

func TestFind(t *testing.T) {
	d := testDirectory(t)

	tests := []struct {
		query       string
		wantName    string
		wantCountry string
	}{
		{"Berlin", "Berlin", "Germany"},
		{"berlin", "Berlin", "Germany"},
		{"BERLIN", "Berlin", "Germany"},
		{"Paris/France", "Paris", "France"},
		{"paris/united states", "Paris", "United States"},
		{"SÃO PAULO", "São Paulo", "Brazil"},
		{"MÜNSTER", "Münster", "Germany"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, err := d.Find(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.Name)
			assert.Equal(t, tt.wantCountry, c.Country)
		})
	}
}

func TestFind_Ambiguous(t *testing.T) {
	d := testDirectory(t)

	_, err := d.Find("paris")
	var amb *AmbiguousError
	require.True(t, errors.As(err, &amb))
	require.Len(t, amb.Matches, 2)
	assert.Equal(t, "France", amb.Matches[0].Country)
	assert.Equal(t, "United States", amb.Matches[1].Country)
	assert.Equal(t, "Multiple cities found for paris:\nParis, France\nParis, United States", err.Error())
}

func TestFind_NotFound(t *testing.T) {
	d := testDirectory(t)

	t.Run("with suggestion", func(t *testing.T) {
		_, err := d.Find("Berlln")
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, []string{"Berlin, Germany"}, nf.Suggestions)
		assert.Equal(t, "City Berlln not found\nDid you mean: Berlin, Germany?", err.Error())
	})

	t.Run("no suggestion", func(t *testing.T) {
		_, err := d.Find("Atlantis")
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Empty(t, nf.Suggestions)
		assert.Equal(t, "City Atlantis not found", err.Error())
	})

	t.Run("wrong country", func(t *testing.T) {
		_, err := d.Find("Berlin/France")
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Empty(t, nf.Suggestions)
	})

	t.Run("suggestions limited to country", func(t *testing.T) {
		_, err := d.Find("Munster/Germany")
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, []string{"Münster, Germany"}, nf.Suggestions)
	})

	t.Run("disabled", func(t *testing.T) {
		d := testDirectory(t)
		d.MaxSuggestions = 0
		_, err := d.Find("Berlln")
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Nil(t, nf.Suggestions)
	})
}

func TestFindAll(t *testing.T) {
	d := testDirectory(t)

	found, err := d.FindAll([]string{"Berlin", "Paris/France", "munich"})
	require.NoError(t, err)
	names := make([]string, 0, len(found))
	for _, c := range found {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{"Berlin, Germany", "Paris, France", "Munich, Germany"}, names)

	_, err = d.FindAll([]string{"Berlin", "Nowhere"})
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Nowhere", nf.Query)
}

func TestAll_KeepsFileOrder(t *testing.T) {
	d := NewDirectory([]models.City{{Name: "b"}, {Name: "a"}})
	assert.Equal(t, "b", d.All()[0].Name)
	assert.Equal(t, 2, d.Len())
}
