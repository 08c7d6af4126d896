package usecase

import "errors"

// Closed error set surfaced to transport. Diagnostic detail stays in server
// logs; handlers map these to stable codes and statuses.
var (
	ErrNotFound          = errors.New("order not found")
	ErrAlreadyConfirmed  = errors.New("order already confirmed")
	ErrPaymentUnverified = errors.New("payment not confirmed by processor")
)

// ProcessorError carries the payment processor's user-facing message when it
// gave one.
type ProcessorError struct {
	Message string
	Err     error
}

func (e *ProcessorError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "payment session could not be created"
}

func (e *ProcessorError) Unwrap() error { return e.Err }
