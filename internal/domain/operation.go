package domain

import "github.com/shopspring/decimal"

// OperationType represents the kind of ledger operation
type OperationType string

// Operation types
const (
	View   OperationType = "VIEW"
	Credit OperationType = "CREDIT"
	Debit  OperationType = "DEBIT"
)

// ReasonCode explains why an operation was rejected
type ReasonCode string

const (
	ReasonNone              ReasonCode = ""
	ReasonInsufficientFunds ReasonCode = "INSUFFICIENT_FUNDS"
)

// OpeningBalance is the balance every ledger starts with
var OpeningBalance = decimal.NewFromFloat(1000.00)

// OperationResult is the outcome of a single ledger operation
type OperationResult struct {
	Type     OperationType
	Amount   decimal.Decimal
	Balance  decimal.Decimal // Balance after the operation, unchanged when rejected
	Accepted bool
	Reason   ReasonCode
}
