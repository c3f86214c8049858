// Package cli implements the citydist command line.
//
// # Usage
//
//	citydist [flags] <city1> <city2> [city...]
//	citydist [flags] <lat1> <lon1> <lat2> <lon2>
//
// With city names, the distance between every pair of named cities is
// printed. A name may be qualified with its country to pick between cities
// that share a name:
//
//	citydist Paris/France Berlin Tokyo
//
// With exactly four numbers, the distance between the two points is printed,
// followed by the nearest known city to each point:
//
//	citydist 48.85 2.35 -33.87 151.21
//
// Negative numbers are read as arguments, not flags. Flags must therefore
// come before the first negative coordinate.
//
// # Flags
//
//	--data, -d     City file, .csv or .xlsx (env CITYDIST_DATA)
//	--sheet        Worksheet to read from an .xlsx file (env CITYDIST_SHEET)
//	--format, -f   Output format: text, json, yaml (env CITYDIST_FORMAT)
//	--xlsx         Also write the results to this workbook
//	--suggestions  Maximum "did you mean" names for unknown cities
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//
// When --data is not given, cities.csv is looked up in the working directory
// and then next to the executable.
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  Unknown or ambiguous city, malformed arguments, unreadable data file
package cli
