package networth

import (
	"github.com/cleared-dev/networth/internal/month"
)

// FillGaps returns rows extended so that every month from the first row
// through max(last row, end) is present exactly once. A month with no row
// repeats the preceding row's totals and balances under its own label.
//
// rows must be ascending with no duplicate months, as Bucketize produces.
// A zero end leaves the tail alone. rows is not modified.
func FillGaps(rows []Row, end month.Month, label Labeler) []Row {
	if len(rows) == 0 {
		return []Row{}
	}
	if label == nil {
		label = DefaultLabeler
	}

	first := rows[0].Month
	last := month.Max(rows[len(rows)-1].Month, end)

	filled := make([]Row, 0, month.Between(first, last)+1)
	next := 0
	for m := range month.Span(first, last) {
		if next < len(rows) && rows[next].Month == m {
			filled = append(filled, rows[next])
			next++
			continue
		}
		filled = append(filled, carryForward(m, label, filled))
	}
	return filled
}

// carryForward synthesizes the row for a quiet month from the last row in
// filled, or an empty row when there is none.
func carryForward(m month.Month, label Labeler, filled []Row) Row {
	if len(filled) == 0 {
		return Row{Month: m, Label: label(m), Balances: Snapshot{}}
	}
	prev := filled[len(filled)-1]
	prev.Month = m
	prev.Label = label(m)
	prev.Balances = prev.Balances.Clone()
	return prev
}
