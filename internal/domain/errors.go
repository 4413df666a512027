package domain

import "fmt"

// Error is a caller-facing business-rule failure. Every kind carries a
// stable code so transport layers can render it without inspecting the
// message text.
type Error struct {
	Code    string
	message string
}

func (e *Error) Error() string {
	return e.message
}

var (
	ErrDuplicateAccount  = &Error{Code: "DUPLICATE_ACCOUNT", message: "an account with this number already exists"}
	ErrAccountNotFound   = &Error{Code: "ACCOUNT_NOT_FOUND", message: "no account registered with this number"}
	ErrAccountInactive   = &Error{Code: "ACCOUNT_INACTIVE", message: "account is inactive"}
	ErrInvalidAmount     = &Error{Code: "INVALID_AMOUNT", message: "amount must be greater than zero"}
	ErrInsufficientFunds = &Error{Code: "INSUFFICIENT_FUNDS", message: "insufficient funds"}
	ErrSameAccount       = &Error{Code: "SAME_ACCOUNT", message: "source and destination accounts are the same"}
	ErrNonZeroBalance    = &Error{Code: "NON_ZERO_BALANCE", message: "account cannot be closed while it still has funds"}
	ErrStorage           = &Error{Code: "STORAGE_FAILURE", message: "storage failure"}
)

// StorageError wraps an infrastructure failure behind the stable
// STORAGE_FAILURE code. The ledger guarantees that when one of these is
// returned, no balance was mutated.
func StorageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
