// Package render writes a net worth report as a text table, CSV or JSON.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/networth/internal/networth"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatTable, FormatCSV, FormatJSON}

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want table, csv or json)", s)
}

// Settings controls how amounts and numbers are printed.
type Settings struct {
	Locale   string // BCP 47, e.g. "en-US"
	Currency string // ISO 4217, e.g. "USD"
}

// Render writes r to w in format f.
func Render(w io.Writer, r *networth.Report, f Format, s Settings) error {
	switch f {
	case FormatTable:
		return Table(w, r, s)
	case FormatCSV:
		return CSV(w, r)
	case FormatJSON:
		return JSON(w, r)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}
