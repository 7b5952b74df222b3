package domain

import "github.com/shopspring/decimal"

// BalanceRepository defines the interface for accessing the ledger balance
type BalanceRepository interface {
	// Read returns the current balance
	Read() decimal.Decimal

	// Write replaces the stored balance. Callers validate the new value.
	Write(amount decimal.Decimal)
}
