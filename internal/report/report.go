// Package report renders query results for the console or for other tools.
//
// The text format prints one sentence per result. JSON and YAML carry the
// full report including city metadata and distances.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"city-distance/internal/models"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// SupportedFormats lists the accepted --format values.
func SupportedFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// Writer serializes reports to an output stream.
type Writer struct {
	format Format
	out    io.Writer
}

// NewWriter returns a Writer for format. Unknown formats fall back to text.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatText
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter returns a Writer bound to os.Stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

func (w *Writer) Serialize(ctx context.Context, r *models.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	default:
		return writeText(w.out, r)
	}
}

func writeText(out io.Writer, r *models.Report) error {
	for _, d := range r.Distances {
		if _, err := fmt.Fprintf(out, "The distance between %s and %s is: %.2f km\n", d.From, d.To, d.Kilometers); err != nil {
			return err
		}
	}
	for _, p := range r.Points {
		if _, err := fmt.Fprintf(out, "Distance between %s and %s is %.2f km\n", p.From, p.To, p.Kilometers); err != nil {
			return err
		}
	}
	for _, n := range r.Nearest {
		if _, err := fmt.Fprintf(out, "Nearest city to %s is %s\n", n.Point, n.City); err != nil {
			return err
		}
	}
	return nil
}
