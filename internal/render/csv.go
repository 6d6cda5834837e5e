package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/networth/internal/networth"
)

// CSV writes one row per month. Split reports add one column per account
// series after the totals.
func CSV(w io.Writer, r *networth.Report) error {
	cw := csv.NewWriter(w)

	header := []string{"month", "label", "assets", "debts", "net_worth", "debt_ratio"}
	var series []networth.AccountSeries
	if r.SplitByAccount {
		series = append(append(series, r.AssetSeries...), r.DebtSeries...)
		for _, s := range series {
			header = append(header, s.Name)
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	debts := r.ChartDebts()
	for i := range r.Len() {
		rec := []string{
			r.Months[i].String(),
			r.Labels[i],
			r.Assets[i].StringFixed(2),
			debts[i].StringFixed(2),
			r.NetWorths[i].StringFixed(2),
			r.DebtRatios[i].String(),
		}
		for _, s := range series {
			rec = append(rec, s.Values[i].StringFixed(2))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
