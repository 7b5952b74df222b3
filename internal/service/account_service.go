package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/account-ledger/internal/domain"
	applog "github.com/tirasundara/account-ledger/internal/log"
)

// AccountService applies the view, credit and debit rules to a balance repository
type AccountService struct {
	repo   domain.BalanceRepository
	logger *slog.Logger
}

// NewAccountService creates a new AccountService. A nil logger discards records.
func NewAccountService(repo domain.BalanceRepository, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = applog.Discard()
	}

	return &AccountService{
		repo:   repo,
		logger: logger.With(applog.FieldComponent, applog.ComponentService),
	}
}

// View reports the current balance without changing it
func (s *AccountService) View() domain.OperationResult {
	result := domain.OperationResult{
		Type:     domain.View,
		Amount:   decimal.Zero,
		Balance:  s.repo.Read(),
		Accepted: true,
	}

	s.log(applog.OpView, result)
	return result
}

// Credit adds amount to the balance. The caller must have checked that amount is positive.
func (s *AccountService) Credit(amount decimal.Decimal) domain.OperationResult {
	newBalance := s.repo.Read().Add(amount)
	s.repo.Write(newBalance)

	result := domain.OperationResult{
		Type:     domain.Credit,
		Amount:   amount,
		Balance:  newBalance,
		Accepted: true,
	}

	s.log(applog.OpCredit, result)
	return result
}

// Debit subtracts amount from the balance when funds allow, otherwise leaves it untouched
func (s *AccountService) Debit(amount decimal.Decimal) domain.OperationResult {
	current := s.repo.Read()

	if amount.GreaterThan(current) {
		result := domain.OperationResult{
			Type:     domain.Debit,
			Amount:   amount,
			Balance:  current,
			Accepted: false,
			Reason:   domain.ReasonInsufficientFunds,
		}

		s.log(applog.OpDebit, result)
		return result
	}

	// A zero debit still writes back the unchanged balance
	newBalance := current.Sub(amount)
	s.repo.Write(newBalance)

	result := domain.OperationResult{
		Type:     domain.Debit,
		Amount:   amount,
		Balance:  newBalance,
		Accepted: true,
	}

	s.log(applog.OpDebit, result)
	return result
}

func (s *AccountService) log(op string, result domain.OperationResult) {
	level := slog.LevelDebug
	if !result.Accepted {
		level = slog.LevelInfo
	}

	s.logger.Log(context.Background(), level, "ledger operation",
		applog.FieldOperation, op,
		applog.FieldAmount, result.Amount.String(),
		applog.FieldBalance, result.Balance.StringFixed(2),
		applog.FieldAccepted, result.Accepted,
		applog.FieldReason, string(result.Reason),
	)
}
