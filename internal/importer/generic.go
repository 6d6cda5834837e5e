package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/networth/internal/model"
)

// GenericParser reads the minimal "date,amount,description" layout with
// ISO dates.
type GenericParser struct{}

const (
	genericHeader     = "date,amount,description"
	genericDateFormat = "2006-01-02"
	genericNumFields  = 3
	genericColDate    = 0
	genericColAmount  = 1
	genericColDesc    = 2
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns BankTransactions.
func (p *GenericParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if got := strings.ToLower(strings.Join(records[0], ",")); got != genericHeader {
		return nil, fmt.Errorf("unexpected header %q: want %q", got, genericHeader)
	}

	refs := newRefSet(p.Format())
	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		row := i + 2
		if rec[genericColDate] == "" {
			return nil, &model.TransactionError{Index: row, Field: "date", Reason: "missing"}
		}
		date, err := time.Parse(genericDateFormat, rec[genericColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", row, rec[genericColDate], err)
		}

		if rec[genericColAmount] == "" {
			return nil, &model.TransactionError{Index: row, Field: "amount", Reason: "missing"}
		}
		amount, err := decimal.NewFromString(rec[genericColAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", row, rec[genericColAmount], err)
		}

		desc := rec[genericColDesc]
		txns = append(txns, model.BankTransaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Reference:   refs.next(date, desc),
		})
	}
	return txns, nil
}
