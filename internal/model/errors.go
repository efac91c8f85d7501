package model

import "errors"

var (
	// ErrInsufficientFunds is returned when a debit would leave a negative
	// balance. The message text is matched verbatim by callers.
	ErrInsufficientFunds = errors.New("Dinero insuficiente") //nolint:staticcheck // ST1005: fixed message

	// ErrBalanceUnset is returned when a mutation is attempted on an account
	// whose balance was never set.
	ErrBalanceUnset = errors.New("account balance is not set")

	// ErrNilAccount is returned when a transfer is given a nil account.
	ErrNilAccount = errors.New("account is nil")
)
