package accounts

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/networth/internal/model"
)

func TestRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{ID: "checking", Name: "Joint Checking", Status: model.StatusOnBudget},
		{ID: "car-loan", Name: "Car Loan, 2019", Status: model.StatusClosed},
	}

	var buf bytes.Buffer
	err := WriteAccounts(&buf, accounts)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "account_id,account_name,status\n"))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestReadTestdata(t *testing.T) {
	f, err := os.Open("../../testdata/accounts.csv")
	require.NoError(t, err)
	defer f.Close()

	accounts, err := ReadAccounts(f)
	require.NoError(t, err)
	require.Len(t, accounts, 6)

	statuses := make(map[model.AccountStatus]int)
	for _, acct := range accounts {
		statuses[acct.Status]++
	}
	assert.Equal(t, 3, statuses[model.StatusOnBudget])
	assert.Equal(t, 2, statuses[model.StatusTracking])
	assert.Equal(t, 1, statuses[model.StatusClosed])
}

func TestUnmarshalAccount_Errors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
		want   string
	}{
		{"short row", []string{"a", "b"}, "expected 3 fields"},
		{"empty id", []string{"", "Name", "on_budget"}, "empty account_id"},
		{"bad status", []string{"a", "Name", "archived"}, "unknown status"},
	}
	for _, tt := range tests {
		_, err := UnmarshalAccount(tt.record)
		require.Error(t, err, tt.name)
		assert.Contains(t, err.Error(), tt.want, tt.name)
	}
}

func TestReadAccounts_ReportsRow(t *testing.T) {
	data := "account_id,account_name,status\nchecking,Checking,on_budget\nbad,Bad,nope\n"
	_, err := ReadAccounts(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadAccounts_Empty(t *testing.T) {
	accounts, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, accounts)
}

func TestSampleCatalogRoundTrip(t *testing.T) {
	chart := SampleCatalog()

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, chart))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, chart, got)
}
