package model

// AccountStatus places an account in one of the three catalogs.
type AccountStatus string

const (
	StatusOnBudget AccountStatus = "on_budget"
	StatusTracking AccountStatus = "tracking"
	StatusClosed   AccountStatus = "closed"
)

// Valid reports whether s is a known status.
func (s AccountStatus) Valid() bool {
	switch s {
	case StatusOnBudget, StatusTracking, StatusClosed:
		return true
	}
	return false
}

// Account represents a row in accounts.csv.
type Account struct {
	ID     string
	Name   string
	Status AccountStatus
}

// Catalogs groups accounts the way the budget exposes them. The order
// OnBudget, Tracking, Closed is significant: it fixes series ordering.
type Catalogs struct {
	OnBudget []Account
	Tracking []Account
	Closed   []Account
}

// Lists returns the three catalogs in their fixed order.
func (c Catalogs) Lists() [3][]Account {
	return [3][]Account{c.OnBudget, c.Tracking, c.Closed}
}
