package networth

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/networth/internal/model"
	"github.com/cleared-dev/networth/internal/month"
)

// Filters narrow what a report covers.
type Filters struct {
	// ExcludedAccounts are dropped before any balance is computed.
	ExcludedAccounts map[string]bool
	// From and To pick the displayed window by month. Either may be zero.
	From time.Time
	To   time.Time
}

// Options carry display preferences into the series builder.
type Options struct {
	Labeler        Labeler
	Palette        []string
	FlipDebt       bool // chart debts below the axis
	SplitByAccount bool // render per-account series instead of totals
}

// Summary is one month's headline figures.
type Summary struct {
	Month     month.Month     `json:"month"`
	Label     string          `json:"label"`
	Assets    decimal.Decimal `json:"assets"`
	Debts     decimal.Decimal `json:"debts"`
	NetWorth  decimal.Decimal `json:"net_worth"`
	DebtRatio Ratio           `json:"debt_ratio"`
}

// Report is the payload handed to renderers. All per-month slices are index
// aligned and have Len() entries.
type Report struct {
	Months      []month.Month     `json:"months"`
	Labels      []string          `json:"labels"`
	Assets      []decimal.Decimal `json:"assets"`
	Debts       []decimal.Decimal `json:"debts"`
	NetWorths   []decimal.Decimal `json:"net_worths"`
	DebtRatios  []Ratio           `json:"debt_ratios"`
	Balances    []Snapshot        `json:"balances"`
	AssetSeries []AccountSeries   `json:"asset_series"`
	DebtSeries  []AccountSeries   `json:"debt_series"`
	// Latest is the last month of the whole history, regardless of window.
	Latest         Summary `json:"latest"`
	FlipDebt       bool    `json:"flip_debt"`
	SplitByAccount bool    `json:"split_by_account"`
}

// ComputeReport runs the full pipeline over txns. The only error is a
// *model.TransactionError for a transaction missing its date or account.
func ComputeReport(txns []model.Transaction, catalogs model.Catalogs, filters Filters, opts Options) (*Report, error) {
	label := opts.Labeler
	if label == nil {
		label = DefaultLabeler
	}

	rows, err := Bucketize(txns, filters.ExcludedAccounts, label)
	if err != nil {
		return nil, err
	}

	var end month.Month
	if !filters.To.IsZero() {
		end = month.Of(filters.To)
	}
	history := FillGaps(rows, end, label)
	window := SelectRange(history, filters.From, filters.To)

	r := &Report{
		Months:         make([]month.Month, 0, len(window)),
		Labels:         make([]string, 0, len(window)),
		Assets:         make([]decimal.Decimal, 0, len(window)),
		Debts:          make([]decimal.Decimal, 0, len(window)),
		NetWorths:      make([]decimal.Decimal, 0, len(window)),
		DebtRatios:     make([]Ratio, 0, len(window)),
		Balances:       make([]Snapshot, 0, len(window)),
		FlipDebt:       opts.FlipDebt,
		SplitByAccount: opts.SplitByAccount,
	}
	for _, row := range window {
		r.Months = append(r.Months, row.Month)
		r.Labels = append(r.Labels, row.Label)
		r.Assets = append(r.Assets, row.Assets)
		r.Debts = append(r.Debts, row.Debts)
		r.NetWorths = append(r.NetWorths, row.NetWorth)
		r.DebtRatios = append(r.DebtRatios, row.DebtRatio)
		r.Balances = append(r.Balances, row.Balances)
	}
	r.AssetSeries, r.DebtSeries = BuildSeries(window, catalogs, opts.Palette)

	if len(history) > 0 {
		r.Latest = summarize(history[len(history)-1])
	}
	return r, nil
}

func summarize(row Row) Summary {
	return Summary{
		Month:     row.Month,
		Label:     row.Label,
		Assets:    row.Assets,
		Debts:     row.Debts,
		NetWorth:  row.NetWorth,
		DebtRatio: row.DebtRatio,
	}
}

// Len returns the number of months in the window.
func (r *Report) Len() int { return len(r.Labels) }

// At returns the headline figures for month i of the window.
func (r *Report) At(i int) Summary {
	return Summary{
		Month:     r.Months[i],
		Label:     r.Labels[i],
		Assets:    r.Assets[i],
		Debts:     r.Debts[i],
		NetWorth:  r.NetWorths[i],
		DebtRatio: r.DebtRatios[i],
	}
}

// ChartDebts returns debts as they should be plotted: negated when FlipDebt
// is set, unchanged otherwise.
func (r *Report) ChartDebts() []decimal.Decimal {
	out := make([]decimal.Decimal, len(r.Debts))
	for i, d := range r.Debts {
		if r.FlipDebt {
			d = d.Neg()
		}
		out[i] = d
	}
	return out
}
