package cities

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"city-distance/internal/excel"
	"city-distance/internal/models"
)

// DefaultFile is the data file looked up when no path is given.
const DefaultFile = "cities.csv"

var ErrNoCities = errors.New("no cities loaded")

// ParseCSV reads semicolon-delimited index;country;name;lat;lon;population
// rows. Blank lines are skipped and a first row whose latitude does not
// parse is treated as a header.
func ParseCSV(r io.Reader) ([]models.City, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var cities []models.City
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		isFirst := first
		first = false

		city, err := models.ParseCityRecord(record, line)
		if err != nil {
			if isFirst {
				continue // header
			}
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, nil
}

// Options tune Load.
type Options struct {
	// Sheet selects the worksheet for .xlsx input. Empty means the first one.
	Sheet string
}

// Load reads the city file at path. Workbooks (.xlsx) are read with the
// excel package, anything else is parsed as CSV.
func Load(path string, opts Options) (*Directory, error) {
	var (
		list []models.City
		err  error
	)

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		list, err = loadWorkbook(path, opts.Sheet)
	} else {
		list, err = loadCSV(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("loading %s: %w", path, ErrNoCities)
	}

	return NewDirectory(list), nil
}

func loadCSV(path string) ([]models.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCSV(f)
}

func loadWorkbook(path, sheet string) ([]models.City, error) {
	f, err := excel.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return excel.ReadCities(f, sheet)
}

// ResolvePath returns explicit when set. Otherwise it looks for DefaultFile
// in the working directory and then next to the running executable.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	candidates := []string{DefaultFile}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), DefaultFile))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%s not found in working directory or next to the executable, use --data", DefaultFile)
}
