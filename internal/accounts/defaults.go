package accounts

import "github.com/cleared-dev/networth/internal/model"

// SampleCatalog returns the starter catalog written by `networth init`.
func SampleCatalog() []model.Account {
	return []model.Account{
		{ID: "checking", Name: "Checking", Status: model.StatusOnBudget},
		{ID: "savings", Name: "Savings", Status: model.StatusOnBudget},
		{ID: "credit-card", Name: "Credit Card", Status: model.StatusOnBudget},
		{ID: "brokerage", Name: "Brokerage", Status: model.StatusTracking},
		{ID: "mortgage", Name: "Mortgage", Status: model.StatusTracking},
	}
}
