package networth

import (
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/networth/internal/model"
	"github.com/cleared-dev/networth/internal/month"
)

// DebtSuffix is appended to an account name to label its debt series.
const DebtSuffix = " (Debt)"

// AccountSeries is one account's contribution for each month of a window.
type AccountSeries struct {
	AccountID string            `json:"account_id"`
	Name      string            `json:"name"`
	Index     int               `json:"index"`
	Color     string            `json:"color,omitempty"`
	Values    []decimal.Decimal `json:"values"`
}

// SelectRange returns the rows from the month of from through the month of
// to, inclusive. A from month with no row starts at the first row, since net
// worth is cumulative from the beginning of history; a to month with no row
// runs to the last. An inverted window is empty.
func SelectRange(rows []Row, from, to time.Time) []Row {
	start := indexOfMonth(rows, month.Of(from))
	if start < 0 {
		start = 0
	}
	end := indexOfMonth(rows, month.Of(to))
	if end < 0 {
		end = len(rows) - 1
	}
	if start > end {
		return []Row{}
	}
	return slices.Clone(rows[start : end+1])
}

func indexOfMonth(rows []Row, m month.Month) int {
	return slices.IndexFunc(rows, func(r Row) bool { return r.Month == m })
}

// SeriesOrder folds the on-budget, tracking and closed catalogs, in that
// order, into a list of distinct accounts. An account's position is where it
// was first seen; its name is the last one seen.
func SeriesOrder(catalogs model.Catalogs) []model.Account {
	var order []model.Account
	pos := make(map[string]int)
	for _, list := range catalogs.Lists() {
		for _, acct := range list {
			if i, ok := pos[acct.ID]; ok {
				order[i].Name = acct.Name
				continue
			}
			pos[acct.ID] = len(order)
			order = append(order, acct)
		}
	}
	return order
}

// BuildSeries projects the balances of rows into two parallel series per
// account: positive balances into the asset series, the rest (kept negative)
// into the debt series. Each series has one value per row; months where the
// account has no balance stay zero.
//
// Accounts that appear in rows but in no catalog are appended after the
// catalog accounts in order of first appearance and named by their ID.
// Colors cycle through palette by series index when palette is non-empty.
func BuildSeries(rows []Row, catalogs model.Catalogs, palette []string) (assets, debts []AccountSeries) {
	order := SeriesOrder(catalogs)
	pos := make(map[string]int, len(order))
	for i, acct := range order {
		pos[acct.ID] = i
	}
	for _, row := range rows {
		for _, id := range slices.Sorted(maps.Keys(row.Balances)) {
			if _, ok := pos[id]; !ok {
				pos[id] = len(order)
				order = append(order, model.Account{ID: id, Name: id})
			}
		}
	}

	assets = make([]AccountSeries, len(order))
	debts = make([]AccountSeries, len(order))
	for i, acct := range order {
		var color string
		if len(palette) > 0 {
			color = palette[i%len(palette)]
		}
		assets[i] = AccountSeries{
			AccountID: acct.ID,
			Name:      acct.Name,
			Index:     i,
			Color:     color,
			Values:    make([]decimal.Decimal, len(rows)),
		}
		debts[i] = AccountSeries{
			AccountID: acct.ID,
			Name:      acct.Name + DebtSuffix,
			Index:     i,
			Color:     color,
			Values:    make([]decimal.Decimal, len(rows)),
		}
	}

	for r, row := range rows {
		for id, balance := range row.Balances {
			i := pos[id]
			if balance.IsPositive() {
				assets[i].Values[r] = balance
			} else {
				debts[i].Values[r] = balance
			}
		}
	}
	return assets, debts
}
