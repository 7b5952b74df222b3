package repository_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/account-ledger/internal/repository"
)

func TestInMemoryBalanceRepository_Read(t *testing.T) {
	repo := repository.NewDefaultBalanceRepository()

	expected := decimal.NewFromFloat(1000.00)
	if !repo.Read().Equal(expected) {
		t.Errorf("Expected initial balance to be %s, got %s", expected, repo.Read())
	}

	// Multiple reads return the same value
	first := repo.Read()
	second := repo.Read()
	if !first.Equal(second) {
		t.Errorf("Expected repeated reads to match, got %s and %s", first, second)
	}
}

func TestInMemoryBalanceRepository_Write(t *testing.T) {
	repo := repository.NewInMemoryBalanceRepository(decimal.Zero)

	testCases := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"whole amount", decimal.NewFromFloat(1500.00)},
		{"decimal amount", decimal.NewFromFloat(1234.56)},
		{"zero", decimal.Zero},
		// The store does not enforce the non-negative invariant
		{"negative amount", decimal.NewFromFloat(-10.50)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo.Write(tc.amount)

			if !repo.Read().Equal(tc.amount) {
				t.Errorf("Expected balance to be %s, got %s", tc.amount, repo.Read())
			}
		})
	}
}
