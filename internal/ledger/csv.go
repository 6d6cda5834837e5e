package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/networth/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "date,account_id,amount,description,reference"

const (
	numFields  = 5
	dateFormat = "2006-01-02"
	colDate    = 0
	colAcctID  = 1
	colAmount  = 2
	colDesc    = 3
	colRef     = 4
)

// ReadTransactions reads all transactions from a transactions.csv reader.
// A row with a missing or unreadable date, account or amount fails with a
// *model.TransactionError whose Index is the 1-based file row.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec, i+2)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a writer (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendTransactions appends transactions to an existing file writer (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colAcctID] = txn.AccountID
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colDesc] = txn.Description
	row[colRef] = txn.Reference
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. row is used only
// for error reporting.
func UnmarshalTransaction(record []string, row int) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("row %d: expected %d fields, got %d", row, numFields, len(record))
	}

	invalid := func(field, reason string) error {
		return &model.TransactionError{Index: row, Field: field, Reason: reason}
	}

	if record[colDate] == "" {
		return model.Transaction{}, invalid("date", "missing")
	}
	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, invalid("date", fmt.Sprintf("parsing %q: %v", record[colDate], err))
	}

	if record[colAcctID] == "" {
		return model.Transaction{}, invalid("account_id", "missing")
	}

	if record[colAmount] == "" {
		return model.Transaction{}, invalid("amount", "missing")
	}
	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, invalid("amount", fmt.Sprintf("parsing %q: %v", record[colAmount], err))
	}

	return model.Transaction{
		Date:        date,
		AccountID:   record[colAcctID],
		Amount:      amount,
		Description: record[colDesc],
		Reference:   record[colRef],
	}, nil
}
