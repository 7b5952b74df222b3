package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/account-ledger/internal/domain"
)

// InMemoryBalanceRepository implements the BalanceRepository interface with a single in-process value
type InMemoryBalanceRepository struct {
	balance decimal.Decimal
}

var _ domain.BalanceRepository = (*InMemoryBalanceRepository)(nil)

// NewInMemoryBalanceRepository creates a new InMemoryBalanceRepository holding the opening amount
func NewInMemoryBalanceRepository(opening decimal.Decimal) *InMemoryBalanceRepository {
	return &InMemoryBalanceRepository{
		balance: opening,
	}
}

// NewDefaultBalanceRepository creates a repository starting at domain.OpeningBalance
func NewDefaultBalanceRepository() *InMemoryBalanceRepository {
	return NewInMemoryBalanceRepository(domain.OpeningBalance)
}

func (r *InMemoryBalanceRepository) Read() decimal.Decimal {
	return r.balance
}

func (r *InMemoryBalanceRepository) Write(amount decimal.Decimal) {
	r.balance = amount
}
