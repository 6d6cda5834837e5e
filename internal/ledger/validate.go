package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/networth/internal/model"
)

// ValidationError describes a single rule violation.
type ValidationError struct {
	Rule        int
	Index       int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("rule %d [txn %d]: %s", e.Rule, e.Index, e.Description)
}

// AccountChecker tests whether an account ID exists in the catalog.
type AccountChecker interface {
	Exists(id string) bool
}

var cents = decimal.NewFromInt(100)

// ValidateTransactions enforces 4 rules on transactions bound for one month's
// file. accounts may be nil to skip the catalog check.
func ValidateTransactions(txns []model.Transaction, accounts AccountChecker, year, month int) []ValidationError {
	var errs []ValidationError

	for i, txn := range txns {
		// Rule 1: Required fields.
		if err := txn.Check(i); err != nil {
			errs = append(errs, ValidationError{Rule: 1, Index: i, Description: err.Error()})
			continue
		}

		// Rule 2: Known account.
		if accounts != nil && !accounts.Exists(txn.AccountID) {
			errs = append(errs, ValidationError{
				Rule:        2,
				Index:       i,
				Description: fmt.Sprintf("unknown account %q", txn.AccountID),
			})
		}

		// Rule 3: Date within month.
		if txn.Date.Year() != year || int(txn.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Rule:        3,
				Index:       i,
				Description: fmt.Sprintf("date %s not in %04d-%02d", txn.Date.Format(dateFormat), year, month),
			})
		}

		// Rule 4: No more than 2 decimal places.
		scaled := txn.Amount.Mul(cents)
		if !scaled.Equal(scaled.Floor()) {
			errs = append(errs, ValidationError{
				Rule:        4,
				Index:       i,
				Description: fmt.Sprintf("amount %s has more than 2 decimal places", txn.Amount),
			})
		}
	}

	return errs
}
