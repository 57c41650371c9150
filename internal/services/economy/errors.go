package economy

// EconomyError is a custom error type for economy-related errors
type EconomyError string

// Error implements the error interface
func (e EconomyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownItem       EconomyError = "unknown shop item"
	ErrInsufficientFunds EconomyError = "insufficient funds"
	ErrNilConfig         EconomyError = "config cannot be nil"
	ErrNilLedgerRepo     EconomyError = "ledger repository cannot be nil"
)
