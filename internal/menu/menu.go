// Package menu drives the ledger from a line-oriented text prompt.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/account-ledger/internal/domain"
	applog "github.com/tirasundara/account-ledger/internal/log"
	"github.com/tirasundara/account-ledger/internal/report"
	"github.com/tirasundara/account-ledger/pkg/lineutil"
)

const (
	separator     = "--------------------------------"
	title         = "Account Management System"
	welcome       = "Welcome to the Account Management System"
	goodbye       = "Exiting the program. Goodbye!"
	choicePrompt  = "Enter your choice (1-4): "
	amountPrompt  = "Enter amount: "
	invalidAmount = "Invalid amount entered."
	invalidChoice = "Invalid choice, please select 1-4."
)

// Menu choices
const (
	ChoiceView   = 1
	ChoiceCredit = 2
	ChoiceDebit  = 3
	ChoiceExit   = 4
)

// State is the lifecycle state of the menu loop
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// AccountOperations is the set of ledger operations the menu dispatches to
type AccountOperations interface {
	View() domain.OperationResult
	Credit(amount decimal.Decimal) domain.OperationResult
	Debit(amount decimal.Decimal) domain.OperationResult
}

// Menu is the interactive loop reading choices and amounts and printing results
type Menu struct {
	ops       AccountOperations
	formatter report.OutputFormatter
	lines     *lineutil.LineReader
	out       io.Writer
	logger    *slog.Logger
	state     State
	writeErr  error
}

// NewMenu creates a new Menu reading from in and writing to out. A nil logger discards records.
func NewMenu(ops AccountOperations, formatter report.OutputFormatter, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = applog.Discard()
	}

	return &Menu{
		ops:       ops,
		formatter: formatter,
		lines:     lineutil.NewLineReader(in, out),
		out:       out,
		logger:    logger.With(applog.FieldComponent, applog.ComponentMenu),
		state:     Running,
	}
}

// State returns the current loop state
func (m *Menu) State() State {
	return m.state
}

// Run drives the loop until the exit choice or the end of input.
// Invalid input never ends the loop; only stream failures are returned.
func (m *Menu) Run() error {
	m.logger.Debug("menu started", applog.FieldOperation, applog.OpStartup)

	m.println("")
	m.println(welcome)
	m.println("")

	for m.state == Running {
		m.displayMenu()
		if m.writeErr != nil {
			return m.fail(m.writeErr)
		}

		raw, err := m.lines.Prompt(choicePrompt)
		if errors.Is(err, io.EOF) {
			m.endOfInput()
			m.println("")
			break
		}
		if err != nil {
			return m.fail(err)
		}

		if err := m.handleChoice(raw); err != nil {
			return m.fail(err)
		}

		m.println("")
		if m.writeErr != nil {
			return m.fail(m.writeErr)
		}
	}

	m.println(goodbye)
	if m.writeErr != nil {
		return m.fail(m.writeErr)
	}

	m.logger.Debug("menu terminated", applog.FieldOperation, applog.OpShutdown)

	if err := m.lines.Close(); err != nil {
		return fmt.Errorf("closing input: %w", err)
	}

	return nil
}

func (m *Menu) displayMenu() {
	m.println(separator)
	m.println(title)
	m.println("1. View Balance")
	m.println("2. Credit Account")
	m.println("3. Debit Account")
	m.println("4. Exit")
	m.println(separator)
}

func (m *Menu) handleChoice(raw string) error {
	choice, err := ParseChoice(raw)
	if err != nil {
		m.rejectChoice(raw, err)
		return nil
	}

	switch choice {
	case ChoiceView:
		m.println(m.formatter.Format(m.ops.View()))

	case ChoiceCredit, ChoiceDebit:
		op := applog.OpCredit
		if choice == ChoiceDebit {
			op = applog.OpDebit
		}

		amount, ok, err := m.promptAmount(op)
		if err != nil || !ok {
			return err
		}

		var result domain.OperationResult
		if choice == ChoiceCredit {
			result = m.ops.Credit(amount)
		} else {
			result = m.ops.Debit(amount)
		}
		m.println(m.formatter.Format(result))

	case ChoiceExit:
		m.state = Terminated

	default:
		m.rejectChoice(raw, ErrInvalidChoice)
	}

	return nil
}

func (m *Menu) rejectChoice(raw string, cause error) {
	m.logger.Info("invalid menu choice",
		applog.FieldOperation, applog.OpChoice,
		applog.FieldInput, raw,
		applog.FieldError, cause,
	)
	m.println(invalidChoice)
}

// promptAmount reads and validates an amount. ok is false when nothing should be applied.
func (m *Menu) promptAmount(op string) (decimal.Decimal, bool, error) {
	raw, err := m.lines.Prompt(amountPrompt)
	if errors.Is(err, io.EOF) {
		m.endOfInput()
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}

	amount, err := ParseAmount(raw)
	if err != nil {
		m.logger.Info("invalid amount",
			applog.FieldOperation, op,
			applog.FieldInput, raw,
		)
		m.println(invalidAmount)
		return decimal.Zero, false, nil
	}

	return amount, true, nil
}

// endOfInput treats a closed input stream as the exit choice.
// Run prints the newline that ends the pending prompt.
func (m *Menu) endOfInput() {
	m.logger.Debug("input closed", applog.FieldOperation, applog.OpShutdown)
	m.state = Terminated
}

func (m *Menu) fail(err error) error {
	m.logger.Error("menu loop failed", applog.FieldError, err)
	_ = m.lines.Close()
	return fmt.Errorf("running menu: %w", err)
}

func (m *Menu) println(s string) {
	if m.writeErr != nil {
		return
	}
	_, m.writeErr = fmt.Fprintln(m.out, s)
}
