package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldSessionID = "session_id"
	FieldOperation = "operation"
	FieldAmount    = "amount"
	FieldBalance   = "balance"
	FieldAccepted  = "accepted"
	FieldReason    = "reason"
	FieldInput     = "input"
	FieldError     = "error"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentMenu    = "menu"
	ComponentService = "service"
)

// Operations defines standard operation names
const (
	OpView     = "view"
	OpCredit   = "credit"
	OpDebit    = "debit"
	OpChoice   = "choice"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
