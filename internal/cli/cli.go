package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"city-distance/internal/cities"
	"city-distance/internal/excel"
	"city-distance/internal/logging"
	"city-distance/internal/report"

	"github.com/urfave/cli/v3"
)

const name = "citydist"

// version is set at build time with -ldflags "-X city-distance/internal/cli.version=...".
var version = "dev"

const usageLine = "Usage: " + name + " <city1> <city2> [city...] OR " + name + " <lat1> <lon1> <lat2> <lon2>"

// UsageError reports arguments that do not fit either invocation shape.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason == "" {
		return usageLine
	}
	return e.Reason + "\n" + usageLine
}

// Run executes the command with args (args[0] is the program name) and
// returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout, stderr)
	if err := cmd.Run(ctx, protectNegativeNumbers(args)); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      name,
		Version:   version,
		Usage:     "Distances between cities and nearest cities to coordinates",
		ArgsUsage: "<city1> <city2> [city...] | <lat1> <lon1> <lat2> <lon2>",
		Description: `Loads a list of cities and answers one of two queries.

Give two or more city names to print the distance between every pair:
  citydist Paris/France Berlin

Give two latitude/longitude pairs to print the distance between the points
and the nearest known city to each of them:
  citydist 48.85 2.35 -33.87 151.21`,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "City file, semicolon-delimited .csv or .xlsx (default: cities.csv in the working directory or next to the executable)",
				Sources: cli.EnvVars("CITYDIST_DATA"),
			},
			&cli.StringFlag{
				Name:    "sheet",
				Usage:   "Worksheet to read when --data is an .xlsx file (default: first sheet)",
				Sources: cli.EnvVars("CITYDIST_SHEET"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(report.FormatText),
				Usage:   "Output format: text, json, yaml",
				Sources: cli.EnvVars("CITYDIST_FORMAT"),
			},
			&cli.StringFlag{
				Name:  "xlsx",
				Usage: "Also write the results to this .xlsx workbook",
			},
			&cli.IntFlag{
				Name:  "suggestions",
				Value: 3,
				Usage: "Maximum number of similar names offered for an unknown city, 0 disables",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "warn",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Hidden:  true,
			},
		},
		// Errors are reported by Run; keep the library from exiting the process.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := logging.New(stderr, logging.Config{
				Level: cmd.String("log-level"),
				Debug: cmd.Bool("debug"),
				JSON:  cmd.Bool("log-json"),
			})
			if err != nil {
				return err
			}

			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			q, err := parseQuery(positionalArgs(cmd))
			if err != nil {
				return err
			}

			path, err := cities.ResolvePath(cmd.String("data"))
			if err != nil {
				return err
			}
			dir, err := cities.Load(path, cities.Options{Sheet: cmd.String("sheet")})
			if err != nil {
				return err
			}
			dir.MaxSuggestions = int(cmd.Int("suggestions"))
			logger.Debug("cities loaded", "path", path, "count", dir.Len())

			r, err := q.evaluate(dir, logger)
			if err != nil {
				return err
			}

			if err := report.NewWriter(format, stdout).Serialize(ctx, r); err != nil {
				return err
			}

			if out := cmd.String("xlsx"); out != "" {
				if err := excel.WriteReport(out, r); err != nil {
					return fmt.Errorf("writing %s: %w", out, err)
				}
				logger.Info("report exported", "path", out)
			}
			return nil
		},
	}
}

// parseOutputFormat extracts and validates the output format from CLI flags.
func parseOutputFormat(cmd *cli.Command) (report.Format, error) {
	f := report.Format(strings.ToLower(cmd.String("format")))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %v", f, report.SupportedFormats())
	}
	return f, nil
}

// positionalArgs drops the "--" inserted by protectNegativeNumbers if the
// parser left it in place.
func positionalArgs(cmd *cli.Command) []string {
	var out []string
	for _, a := range cmd.Args().Slice() {
		if a == "--" {
			continue
		}
		out = append(out, a)
	}
	return out
}

// protectNegativeNumbers ends flag parsing before the first argument that is
// a negative number, so "-33.87" reaches the command as a latitude.
func protectNegativeNumbers(args []string) []string {
	for i := 1; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args
		}
		if !strings.HasPrefix(a, "-") {
			continue
		}
		if !isNumber(a) {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}
