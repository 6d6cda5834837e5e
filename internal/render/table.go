package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"github.com/cleared-dev/networth/internal/networth"
)

// Table writes a human-readable report. With SplitByAccount set, each
// account with a non-zero balance in the window gets its own column.
func Table(w io.Writer, r *networth.Report, s Settings) error {
	p := newPrinter(s.Locale)

	if r.Len() == 0 {
		_, err := fmt.Fprintln(w, "No transactions in range.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	cols := tableColumns(r, s, p)

	header := make([]string, 0, len(cols)+1)
	header = append(header, "Month")
	for _, c := range cols {
		header = append(header, c.title)
	}
	writeRow(tw, header)

	for i := range r.Len() {
		row := make([]string, 0, len(cols)+1)
		row = append(row, r.Labels[i])
		for _, c := range cols {
			row = append(row, c.cell(i))
		}
		writeRow(tw, row)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	latest := r.Latest
	_, err := fmt.Fprintf(w, "\n%s: net worth %s, debt ratio %s (%s)\n",
		latest.Label,
		formatMoney(latest.NetWorth, s.Currency),
		formatRatio(p, latest.DebtRatio),
		p.Sprintf("%d months shown", r.Len()),
	)
	return err
}

type column struct {
	title string
	cell  func(i int) string
}

func tableColumns(r *networth.Report, s Settings, p *message.Printer) []column {
	amount := func(values []decimal.Decimal) func(int) string {
		return func(i int) string { return formatMoney(values[i], s.Currency) }
	}
	netWorth := column{"Net Worth", amount(r.NetWorths)}

	if r.SplitByAccount {
		var cols []column
		for _, series := range append(nonZero(r.AssetSeries), nonZero(r.DebtSeries)...) {
			cols = append(cols, column{series.Name, amount(series.Values)})
		}
		return append(cols, netWorth)
	}

	return []column{
		{"Assets", amount(r.Assets)},
		{"Debts", amount(r.ChartDebts())},
		netWorth,
		{"Debt Ratio", func(i int) string { return formatRatio(p, r.DebtRatios[i]) }},
	}
}

// nonZero drops series that are zero for the whole window.
func nonZero(series []networth.AccountSeries) []networth.AccountSeries {
	var out []networth.AccountSeries
	for _, s := range series {
		for _, v := range s.Values {
			if !v.IsZero() {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func writeRow(w io.Writer, cells []string) {
	fmt.Fprintln(w, strings.Join(cells, "\t")+"\t")
}
