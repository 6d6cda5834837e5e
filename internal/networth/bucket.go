// Package networth turns unordered transactions into a month-by-month
// series of assets, debts, net worth and per-account balances.
//
// The computation is a three stage pipeline: Bucketize folds transactions
// into one Row per month that has activity, FillGaps inserts carried-forward
// rows for quiet months, and SelectRange plus BuildSeries cut the history
// down to the requested window. ComputeReport runs all three.
//
// Every function here is pure over its arguments and safe for concurrent use.
package networth

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/networth/internal/model"
	"github.com/cleared-dev/networth/internal/month"
)

// Snapshot maps account IDs to their running balance at a month's close.
type Snapshot map[string]decimal.Decimal

// Clone returns an independent copy of s.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	return maps.Clone(s)
}

// Totals splits the balances into assets (sum of positive balances) and
// debts (sum of the magnitudes of negative balances).
func (s Snapshot) Totals() (assets, debts decimal.Decimal) {
	for _, balance := range s {
		if balance.IsPositive() {
			assets = assets.Add(balance)
		} else {
			debts = debts.Sub(balance)
		}
	}
	return assets, debts
}

// Sum returns the net of all balances.
func (s Snapshot) Sum() decimal.Decimal {
	var total decimal.Decimal
	for _, balance := range s {
		total = total.Add(balance)
	}
	return total
}

// Row is the aggregated state of every included account at a month's close.
type Row struct {
	Month     month.Month
	Label     string
	Assets    decimal.Decimal
	Debts     decimal.Decimal
	NetWorth  decimal.Decimal
	DebtRatio Ratio
	Balances  Snapshot
}

// closeMonth freezes balances into a Row for m.
func closeMonth(m month.Month, label Labeler, balances Snapshot) Row {
	assets, debts := balances.Totals()
	return Row{
		Month:     m,
		Label:     label(m),
		Assets:    assets,
		Debts:     debts,
		NetWorth:  assets.Sub(debts),
		DebtRatio: DebtRatio(assets, debts),
		Balances:  balances.Clone(),
	}
}

// Bucketize sorts txns by date and folds them into one Row per month that
// has at least one transaction. Balances are cumulative across months.
// Transactions on excluded accounts still open their month but never touch
// a balance.
//
// Any transaction without a date or account fails the whole computation
// with a *model.TransactionError. Empty input yields zero rows.
func Bucketize(txns []model.Transaction, excluded map[string]bool, label Labeler) ([]Row, error) {
	for i, txn := range txns {
		if err := txn.Check(i); err != nil {
			return nil, err
		}
	}
	if label == nil {
		label = DefaultLabeler
	}

	sorted := slices.Clone(txns)
	// Months are read in each date's own location, so order by month first.
	slices.SortStableFunc(sorted, func(a, b model.Transaction) int {
		if c := month.Of(a.Date).Compare(month.Of(b.Date)); c != 0 {
			return c
		}
		return a.Date.Compare(b.Date)
	})

	rows := []Row{}
	balances := Snapshot{}
	var open month.Month
	for i, txn := range sorted {
		m := month.Of(txn.Date)
		if i == 0 {
			open = m
		}
		if m != open {
			rows = append(rows, closeMonth(open, label, balances))
			open = m
		}

		if excluded[txn.AccountID] {
			continue
		}
		balances[txn.AccountID] = balances[txn.AccountID].Add(txn.Amount)
	}

	if len(sorted) > 0 {
		rows = append(rows, closeMonth(open, label, balances))
	}
	return rows, nil
}
