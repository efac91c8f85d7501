package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account is a named ledger entry holding an exact decimal balance.
// The zero value has neither name nor balance set.
type Account struct {
	name       string
	nameSet    bool
	balance    decimal.Decimal
	balanceSet bool
	bankID     string
}

// NewAccount creates an account with the given name and opening balance.
func NewAccount(name string, balance decimal.Decimal) *Account {
	return &Account{name: name, nameSet: true, balance: balance, balanceSet: true}
}

// Name returns the account's display label.
func (a *Account) Name() string { return a.name }

// SetName sets the display label.
func (a *Account) SetName(name string) {
	a.name = name
	a.nameSet = true
}

// Balance returns the current balance. It is zero if never set.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// SetBalance replaces the balance without any invariant check.
func (a *Account) SetBalance(balance decimal.Decimal) {
	a.balance = balance
	a.balanceSet = true
}

// HasBalance reports whether a balance has been set.
func (a *Account) HasBalance() bool { return a.balanceSet }

// BankID returns the ID of the bank the account was registered with,
// or "" if it was never added to one.
func (a *Account) BankID() string { return a.bankID }

// Debit subtracts amount from the balance. If the result would be negative
// the balance is left untouched and ErrInsufficientFunds is returned.
func (a *Account) Debit(amount decimal.Decimal) error {
	if !a.balanceSet {
		return ErrBalanceUnset
	}
	next := a.balance.Sub(amount)
	if next.IsNegative() {
		return ErrInsufficientFunds
	}
	a.balance = next
	return nil
}

// Credit adds amount to the balance. It only fails when no balance is set.
func (a *Account) Credit(amount decimal.Decimal) error {
	if !a.balanceSet {
		return ErrBalanceUnset
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Equal reports whether other is an account with the same name and the
// same numeric balance. Accounts missing either field are never equal.
func (a *Account) Equal(other any) bool {
	var b *Account
	switch o := other.(type) {
	case *Account:
		b = o
	case Account:
		b = &o
	default:
		return false
	}
	if a == nil || b == nil {
		return false
	}
	if !a.nameSet || !a.balanceSet || !b.nameSet || !b.balanceSet {
		return false
	}
	return a.name == b.name && a.balance.Equal(b.balance)
}

func (a *Account) String() string {
	return fmt.Sprintf("%s (%s)", a.name, a.balance.String())
}
