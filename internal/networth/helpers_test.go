package networth

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/networth/internal/model"
	"github.com/cleared-dev/networth/internal/month"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(y, m, d int, account, amount string) model.Transaction {
	return model.Transaction{Date: date(y, m, d), AccountID: account, Amount: dec(amount)}
}

func mon(y, m int) month.Month {
	return month.Month{Year: y, Month: time.Month(m)}
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !dec(want).Equal(got) {
		assert.Fail(t, fmt.Sprintf("want %s, got %s", want, got), msgAndArgs...)
	}
}
