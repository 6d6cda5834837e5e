package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cleared-dev/networth/internal/networth"
)

// JSON writes the full report, indented.
func JSON(w io.Writer, r *networth.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
