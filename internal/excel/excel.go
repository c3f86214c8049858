package excel

import (
	"fmt"

	"city-distance/internal/models"

	"github.com/xuri/excelize/v2"
)

func OpenFile(filename string) (*excelize.File, error) {
	return excelize.OpenFile(filename)
}

// ReadCities reads cities from sheetName, or from the first sheet when
// sheetName is empty. A first row whose latitude does not parse is taken as a
// header and skipped.
func ReadCities(f *excelize.File, sheetName string) ([]models.City, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var cities []models.City
	first := true
	for i, row := range rows {
		line := i + 1
		if isBlank(row) {
			continue
		}
		isFirst := first
		first = false

		city, err := models.ParseCityRecord(row, line)
		if err != nil {
			if isFirst {
				continue // header
			}
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		cities = append(cities, city)
	}
	return cities, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}

// WriteReport saves r as a workbook at path. City queries produce a
// "Distances" sheet; coordinate queries produce "Points" and "Nearest".
func WriteReport(path string, r *models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	var sheets []string
	switch r.Mode {
	case models.ModeCoordinates:
		if err := writePoints(f, r.Points); err != nil {
			return err
		}
		if err := writeNearest(f, r.Nearest); err != nil {
			return err
		}
		sheets = []string{"Points", "Nearest"}
	default:
		if err := writeDistances(f, r.Distances); err != nil {
			return err
		}
		sheets = []string{"Distances"}
	}

	index, err := f.GetSheetIndex(sheets[0])
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(path)
}

func writeDistances(f *excelize.File, data []models.CityDistance) error {
	headers := []interface{}{
		"From", "From Country", "From Lat", "From Lon",
		"To", "To Country", "To Lat", "To Lon",
		"Distance (km)",
	}
	rows := make([][]interface{}, 0, len(data))
	for _, d := range data {
		rows = append(rows, []interface{}{
			d.From.Name, d.From.Country, d.From.Loc.Lat, d.From.Loc.Lon,
			d.To.Name, d.To.Country, d.To.Loc.Lat, d.To.Loc.Lon,
			d.Kilometers,
		})
	}
	return writeSheet(f, "Distances", headers, rows)
}

func writePoints(f *excelize.File, data []models.PointDistance) error {
	headers := []interface{}{"From Lat", "From Lon", "To Lat", "To Lon", "Distance (km)"}
	rows := make([][]interface{}, 0, len(data))
	for _, d := range data {
		rows = append(rows, []interface{}{d.From.Lat, d.From.Lon, d.To.Lat, d.To.Lon, d.Kilometers})
	}
	return writeSheet(f, "Points", headers, rows)
}

func writeNearest(f *excelize.File, data []models.NearestCity) error {
	headers := []interface{}{"Lat", "Lon", "Nearest City", "Country", "City Lat", "City Lon", "Distance (km)"}
	rows := make([][]interface{}, 0, len(data))
	for _, n := range data {
		rows = append(rows, []interface{}{
			n.Point.Lat, n.Point.Lon,
			n.City.Name, n.City.Country, n.City.Loc.Lat, n.City.Loc.Lon,
			n.Kilometers,
		})
	}
	return writeSheet(f, "Nearest", headers, rows)
}

func writeSheet(f *excelize.File, sheetName string, headers []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	// Use Stream Writer for performance
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	return sw.Flush()
}
