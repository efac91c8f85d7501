package model

import (
	"github.com/shopspring/decimal"

	"github.com/sistemasactivos/ledger/internal/id"
)

// Bank administers an ordered list of accounts and moves funds between them.
type Bank struct {
	id       string
	name     string
	accounts []*Account
}

// NewBank creates a bank and registers each of accounts in order.
func NewBank(name string, accounts ...*Account) *Bank {
	b := &Bank{id: id.NewBankID(), name: name}
	for _, a := range accounts {
		b.AddAccount(a)
	}
	return b
}

// ID returns the bank's generated identifier.
func (b *Bank) ID() string { return b.id }

// Name returns the bank's name.
func (b *Bank) Name() string { return b.name }

// Accounts returns the registered accounts in insertion order.
func (b *Bank) Accounts() []*Account {
	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

// Len returns the number of registrations, duplicates included.
func (b *Bank) Len() int { return len(b.accounts) }

// AddAccount appends a and records this bank on it. Adding the same
// account twice registers it twice.
func (b *Bank) AddAccount(a *Account) {
	b.accounts = append(b.accounts, a)
	a.bankID = b.id
}

// Find returns the first registered account named name.
func (b *Bank) Find(name string) (*Account, bool) {
	for _, a := range b.accounts {
		if a.name == name {
			return a, true
		}
	}
	return nil, false
}

// Transfer debits src and then credits dst with amount. A failed debit is
// returned as is and dst is never touched.
func (b *Bank) Transfer(src, dst *Account, amount decimal.Decimal) error {
	if src == nil || dst == nil {
		return ErrNilAccount
	}
	if !src.balanceSet || !dst.balanceSet {
		return ErrBalanceUnset
	}
	if err := src.Debit(amount); err != nil {
		return err
	}
	// Credit cannot fail once both balances are known to be set.
	return dst.Credit(amount)
}
