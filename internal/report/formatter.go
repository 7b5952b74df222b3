package report

import (
	"fmt"

	"github.com/tirasundara/account-ledger/internal/domain"
)

// displayPlaces is the number of decimals shown for every balance
const displayPlaces = 2

// OutputFormatter defines the interface for rendering ledger operation results
type OutputFormatter interface {
	Format(result domain.OperationResult) string
}

// TextFormatter renders results as the interactive menu's display lines
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements the OutputFormatter interface for plain text
func (f *TextFormatter) Format(result domain.OperationResult) string {
	balance := result.Balance.StringFixed(displayPlaces)

	switch result.Type {
	case domain.Credit:
		return fmt.Sprintf("Amount credited. New balance: %s", balance)

	case domain.Debit:
		if result.Reason == domain.ReasonInsufficientFunds {
			return "Insufficient funds for this debit."
		}
		return fmt.Sprintf("Amount debited. New balance: %s", balance)

	default:
		return fmt.Sprintf("Current balance: %s", balance)
	}
}
