package networth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/networth/internal/model"
)

func threeMonths(t *testing.T) []Row {
	t.Helper()
	rows := bucketize(t,
		txn(2023, 1, 1, "A", "10"),
		txn(2023, 2, 1, "A", "10"),
		txn(2023, 3, 1, "A", "10"),
	)
	require.Len(t, rows, 3)
	return rows
}

func TestSelectRange(t *testing.T) {
	rows := threeMonths(t)
	tests := []struct {
		name      string
		from, to  []int
		wantFirst int
		wantLen   int
	}{
		{"exact window", []int{2023, 2, 14}, []int{2023, 3, 1}, 2, 2},
		{"single month", []int{2023, 2, 1}, []int{2023, 2, 28}, 2, 1},
		{"from before history", []int{2020, 1, 1}, []int{2023, 2, 1}, 1, 2},
		{"to after history", []int{2023, 2, 1}, []int{2030, 1, 1}, 2, 2},
		{"both outside", []int{2020, 1, 1}, []int{2030, 1, 1}, 1, 3},
		{"inverted", []int{2023, 3, 1}, []int{2023, 1, 1}, 0, 0},
	}
	for _, tt := range tests {
		got := SelectRange(rows, date(tt.from[0], tt.from[1], tt.from[2]), date(tt.to[0], tt.to[1], tt.to[2]))
		require.Len(t, got, tt.wantLen, tt.name)
		if tt.wantLen > 0 {
			assert.Equal(t, mon(2023, tt.wantFirst), got[0].Month, tt.name)
		}
	}
}

func TestSelectRange_Empty(t *testing.T) {
	got := SelectRange(nil, date(2023, 1, 1), date(2023, 2, 1))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSeriesOrder(t *testing.T) {
	catalogs := model.Catalogs{
		OnBudget: []model.Account{{ID: "chk", Name: "Checking"}, {ID: "sav", Name: "Savings"}},
		Tracking: []model.Account{{ID: "mort", Name: "Mortgage"}, {ID: "chk", Name: "Checking (renamed)"}},
		Closed:   []model.Account{{ID: "old", Name: "Old Card"}},
	}

	order := SeriesOrder(catalogs)
	require.Len(t, order, 4)
	ids := []string{order[0].ID, order[1].ID, order[2].ID, order[3].ID}
	assert.Equal(t, []string{"chk", "sav", "mort", "old"}, ids)
	assert.Equal(t, "Checking (renamed)", order[0].Name, "later catalogs rename without moving")

	assert.Equal(t, order, SeriesOrder(catalogs), "deterministic across calls")
}

func TestBuildSeries(t *testing.T) {
	rows := bucketize(t,
		txn(2023, 1, 1, "chk", "100"),
		txn(2023, 2, 1, "card", "-40"),
		txn(2023, 3, 1, "chk", "-150"),
	)
	catalogs := model.Catalogs{
		OnBudget: []model.Account{{ID: "chk", Name: "Checking"}},
		Tracking: []model.Account{{ID: "card", Name: "Visa"}},
	}

	assets, debts := BuildSeries(rows, catalogs, []string{"#111", "#222"})
	require.Len(t, assets, 2)
	require.Len(t, debts, 2)

	assert.Equal(t, "Checking", assets[0].Name)
	assert.Equal(t, "Checking (Debt)", debts[0].Name)
	assert.Equal(t, "#111", assets[0].Color)
	assert.Equal(t, "#222", debts[1].Color)
	assert.Equal(t, 1, debts[1].Index)

	// Checking: +100, +100, -50.
	require.Len(t, assets[0].Values, 3)
	assertDec(t, "100", assets[0].Values[0])
	assertDec(t, "100", assets[0].Values[1])
	assertDec(t, "0", assets[0].Values[2])
	assertDec(t, "0", debts[0].Values[1])
	assertDec(t, "-50", debts[0].Values[2], "debts are stored negative")

	// Visa: absent in January, -40 after.
	assertDec(t, "0", debts[1].Values[0])
	assertDec(t, "-40", debts[1].Values[1])
	assertDec(t, "-40", debts[1].Values[2])
	assertDec(t, "0", assets[1].Values[2])
}

func TestBuildSeries_UnknownAccounts(t *testing.T) {
	rows := bucketize(t,
		txn(2023, 1, 1, "zeta", "1"),
		txn(2023, 1, 1, "alpha", "1"),
		txn(2023, 2, 1, "beta", "1"),
		txn(2023, 2, 1, "known", "1"),
	)
	catalogs := model.Catalogs{Closed: []model.Account{{ID: "known", Name: "Known"}}}

	assets, _ := BuildSeries(rows, catalogs, nil)
	require.Len(t, assets, 4)
	names := []string{assets[0].Name, assets[1].Name, assets[2].Name, assets[3].Name}
	assert.Equal(t, []string{"Known", "alpha", "zeta", "beta"}, names)
	assert.Empty(t, assets[0].Color)
}

func TestBuildSeries_CatalogAccountWithoutActivity(t *testing.T) {
	rows := bucketize(t, txn(2023, 1, 1, "chk", "5"))
	catalogs := model.Catalogs{OnBudget: []model.Account{{ID: "idle", Name: "Idle"}, {ID: "chk", Name: "Checking"}}}

	assets, debts := BuildSeries(rows, catalogs, nil)
	require.Len(t, assets, 2)
	assert.Equal(t, "Idle", assets[0].Name)
	assertDec(t, "0", assets[0].Values[0])
	assertDec(t, "0", debts[0].Values[0])
	assertDec(t, "5", assets[1].Values[0])
}

func TestBuildSeries_NoRows(t *testing.T) {
	catalogs := model.Catalogs{OnBudget: []model.Account{{ID: "chk", Name: "Checking"}}}
	assets, debts := BuildSeries(nil, catalogs, nil)
	require.Len(t, assets, 1)
	assert.Empty(t, assets[0].Values)
	assert.Empty(t, debts[0].Values)
}
