package networth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/networth/internal/model"
)

var testCatalogs = model.Catalogs{
	OnBudget: []model.Account{{ID: "A", Name: "Checking"}},
	Tracking: []model.Account{{ID: "B", Name: "Brokerage"}, {ID: "C", Name: "Credit Card"}},
}

func q1Filters() Filters {
	return Filters{From: date(2023, 1, 1), To: date(2023, 3, 31)}
}

func TestComputeReport_CarryForwardScenario(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 1, 15, "A", "100"),
		txn(2023, 3, 10, "A", "-50"),
	}
	r, err := ComputeReport(txns, testCatalogs, q1Filters(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Jan 2023", "Feb 2023", "Mar 2023"}, r.Labels)
	assertDec(t, "100", r.Assets[0])
	assertDec(t, "0", r.Debts[0])
	assertDec(t, "100", r.Assets[1], "February carries January forward")
	assertDec(t, "50", r.Assets[2], "balances are cumulative: 100 - 50")
	assertDec(t, "50", r.NetWorths[2])
}

func TestComputeReport_CrossingIntoDebt(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 1, 15, "A", "100"),
		txn(2023, 3, 10, "A", "-150"),
	}
	r, err := ComputeReport(txns, testCatalogs, q1Filters(), Options{})
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	mar := r.At(2)
	assertDec(t, "0", mar.Assets)
	assertDec(t, "50", mar.Debts)
	assertDec(t, "-50", mar.NetWorth)
	assert.True(t, mar.DebtRatio.Infinite, "debt against zero assets is the infinite sentinel")
}

func TestComputeReport_Empty(t *testing.T) {
	r, err := ComputeReport(nil, testCatalogs, q1Filters(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, r.Len())
	assert.NotNil(t, r.Labels)
	assert.Empty(t, r.Assets)
	assert.Empty(t, r.Debts)
	assert.Empty(t, r.NetWorths)
	assert.Empty(t, r.DebtRatios)
	require.Len(t, r.AssetSeries, 3, "catalog accounts still get (empty) series")
	for _, s := range r.AssetSeries {
		assert.Empty(t, s.Values)
	}
	assert.Empty(t, r.Latest.Label)
}

func TestComputeReport_FromBeforeHistory(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 5, 1, "A", "10"),
		txn(2023, 6, 1, "A", "10"),
	}
	filters := Filters{From: date(2019, 1, 1), To: date(2023, 6, 30)}

	r, err := ComputeReport(txns, testCatalogs, filters, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"May 2023", "Jun 2023"}, r.Labels)
}

func TestComputeReport_WindowKeepsCumulativeBalances(t *testing.T) {
	txns := []model.Transaction{
		txn(2022, 6, 1, "A", "1000"),
		txn(2023, 2, 1, "A", "1"),
	}
	r, err := ComputeReport(txns, testCatalogs, q1Filters(), Options{})
	require.NoError(t, err)

	require.Equal(t, 3, r.Len())
	assertDec(t, "1000", r.Assets[0], "January inherits history from before the window")
	assertDec(t, "1001", r.Assets[1])
	assertDec(t, "1001", r.Assets[2])
	assertDec(t, "1001", r.AssetSeries[0].Values[2])
}

func TestComputeReport_MonthCoverage(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 8, 9, "C", "-20"),
		txn(2022, 10, 3, "A", "500"),
		txn(2023, 1, 1, "B", "250"),
	}
	filters := Filters{To: date(2023, 12, 1)}

	r, err := ComputeReport(txns, testCatalogs, filters, Options{})
	require.NoError(t, err)

	require.Equal(t, 15, r.Len(), "Oct 2022 through Dec 2023")
	assert.Equal(t, mon(2022, 10), r.Months[0])
	assert.Equal(t, mon(2023, 12), r.Months[r.Len()-1])
	for i := 1; i < r.Len(); i++ {
		assert.Equal(t, r.Months[i-1].Next(), r.Months[i], "months must be consecutive at %d", i)
	}
}

func TestComputeReport_BalanceConservation(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 1, 5, "A", "1200.50"),
		txn(2023, 1, 9, "C", "-300.25"),
		txn(2023, 2, 2, "B", "75"),
		txn(2023, 2, 20, "A", "-1500"),
		txn(2023, 4, 1, "C", "300.25"),
	}
	r, err := ComputeReport(txns, testCatalogs, Filters{}, Options{})
	require.NoError(t, err)
	require.Equal(t, 4, r.Len())

	for i := 0; i < r.Len(); i++ {
		assert.True(t, r.Assets[i].Sub(r.Debts[i]).Equal(r.NetWorths[i]), "assets - debts at %d", i)
		assert.True(t, r.Balances[i].Sum().Equal(r.NetWorths[i]), "sum of balances at %d", i)
		assert.False(t, r.Assets[i].IsNegative())
		assert.False(t, r.Debts[i].IsNegative())

		var fromSeries decimal.Decimal
		for j := range r.AssetSeries {
			fromSeries = fromSeries.Add(r.AssetSeries[j].Values[i]).Add(r.DebtSeries[j].Values[i])
		}
		assert.True(t, fromSeries.Equal(r.NetWorths[i]), "series sum at %d", i)
	}
}

func TestComputeReport_CarryForwardIdenticalRows(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 1, 5, "A", "10"),
		txn(2023, 1, 6, "C", "-4"),
		txn(2023, 5, 1, "A", "1"),
	}
	r, err := ComputeReport(txns, testCatalogs, Filters{}, Options{})
	require.NoError(t, err)
	require.Equal(t, 5, r.Len())

	for i := 1; i <= 3; i++ {
		assert.True(t, r.Assets[i].Equal(r.Assets[0]))
		assert.True(t, r.Debts[i].Equal(r.Debts[0]))
		assert.True(t, r.NetWorths[i].Equal(r.NetWorths[0]))
		assert.True(t, r.DebtRatios[i].Equal(r.DebtRatios[0]))
		assert.Equal(t, r.Balances[0], r.Balances[i])
	}
}

func TestComputeReport_Exclusion(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 1, 5, "A", "10"),
		txn(2023, 1, 6, "B", "1000000"),
		txn(2023, 2, 6, "B", "-5"),
	}
	filters := Filters{ExcludedAccounts: map[string]bool{"B": true}}

	r, err := ComputeReport(txns, testCatalogs, filters, Options{})
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	for i := 0; i < r.Len(); i++ {
		assertDec(t, "10", r.Assets[i])
		assertDec(t, "0", r.Debts[i])
		_, ok := r.Balances[i]["B"]
		assert.False(t, ok)
	}
	// B is still a catalog account, so it keeps a series, all zero.
	assert.Equal(t, "B", r.AssetSeries[1].AccountID)
	for _, v := range r.AssetSeries[1].Values {
		assert.True(t, v.IsZero())
	}
}

func TestComputeReport_Idempotent(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 3, 1, "C", "-10"),
		txn(2023, 1, 1, "A", "10"),
		txn(2023, 1, 1, "X", "7"),
	}
	opts := Options{Palette: []string{"#000"}}

	first, err := ComputeReport(txns, testCatalogs, q1Filters(), opts)
	require.NoError(t, err)
	second, err := ComputeReport(txns, testCatalogs, q1Filters(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeReport_Concurrent(t *testing.T) {
	var txns []model.Transaction
	for m := 1; m <= 12; m++ {
		txns = append(txns, txn(2023, m, 1, "A", "100"), txn(2023, m, 15, "C", "-30"))
	}
	want, err := ComputeReport(txns, testCatalogs, Filters{}, Options{})
	require.NoError(t, err)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			got, err := ComputeReport(txns, testCatalogs, Filters{}, Options{})
			if err != nil {
				return err
			}
			if got.Len() != want.Len() || !got.NetWorths[11].Equal(want.NetWorths[11]) {
				return fmt.Errorf("concurrent run diverged")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestComputeReport_InvalidTransaction(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 1, 1, "A", "10"),
		{AccountID: "A", Amount: dec("5")},
	}
	r, err := ComputeReport(txns, testCatalogs, Filters{}, Options{})
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, model.ErrInvalidTransaction))
}

func TestComputeReport_LatestIgnoresWindow(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 1, 1, "A", "10"),
		txn(2023, 6, 1, "A", "90"),
	}
	filters := Filters{From: date(2023, 1, 1), To: date(2023, 2, 1)}

	r, err := ComputeReport(txns, testCatalogs, filters, Options{})
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
	assert.Equal(t, "Jun 2023", r.Latest.Label)
	assertDec(t, "100", r.Latest.NetWorth)
}

func TestComputeReport_Options(t *testing.T) {
	txns := []model.Transaction{txn(2023, 1, 1, "C", "-40"), txn(2023, 1, 1, "A", "80")}
	r, err := ComputeReport(txns, testCatalogs, Filters{}, Options{
		Labeler:        NewLabeler("de"),
		FlipDebt:       true,
		SplitByAccount: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jan. 2023", r.Labels[0])
	assert.True(t, r.SplitByAccount)
	assertDec(t, "40", r.Debts[0])
	assertDec(t, "-40", r.ChartDebts()[0])
	assertDec(t, "50", r.DebtRatios[0].Percent)

	r.FlipDebt = false
	assertDec(t, "40", r.ChartDebts()[0])
}
