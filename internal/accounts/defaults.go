package accounts

import "github.com/shopspring/decimal"

// Seed describes an account to open when a bank is built.
type Seed struct {
	Name    string
	Balance decimal.Decimal
}

// DefaultSeeds returns the sample accounts used by a freshly initialized ledger.
func DefaultSeeds() []Seed {
	return []Seed{
		{Name: "Julian", Balance: decimal.RequireFromString("9500.25")},
		{Name: "Andrés", Balance: decimal.RequireFromString("1000.12345")},
	}
}
