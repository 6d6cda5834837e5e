package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidTransaction is the sentinel wrapped by every TransactionError.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Transaction is one posting against an account.
type Transaction struct {
	Date        time.Time
	AccountID   string
	Amount      decimal.Decimal // positive = inflow, negative = outflow
	Description string
	Reference   string
}

// BankTransaction represents a parsed bank CSV row.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
	Reference   string
	Type        string // bank transaction type (ACH_DEBIT, etc.)
}

// Posting stamps a bank row with the account it was imported into.
func (b BankTransaction) Posting(accountID string) Transaction {
	return Transaction{
		Date:        b.Date,
		AccountID:   accountID,
		Amount:      b.Amount,
		Description: b.Description,
		Reference:   b.Reference,
	}
}

// TransactionError reports a transaction that is missing a required field or
// carries one that cannot be read.
type TransactionError struct {
	Index  int    // position in the input sequence or file row
	Field  string // "date", "account_id" or "amount"
	Reason string
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("invalid transaction %d: %s: %s", e.Index, e.Field, e.Reason)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidTransaction).
func (e *TransactionError) Unwrap() error { return ErrInvalidTransaction }

// Check returns a *TransactionError if t lacks a date or an account.
func (t Transaction) Check(index int) error {
	if t.Date.IsZero() {
		return &TransactionError{Index: index, Field: "date", Reason: "missing"}
	}
	if t.AccountID == "" {
		return &TransactionError{Index: index, Field: "account_id", Reason: "missing"}
	}
	return nil
}
