package accounts

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/sistemasactivos/ledger/internal/model"
)

// Service provides name lookup over a bank's accounts.
type Service struct {
	bank *model.Bank
}

// NewService wraps bank.
func NewService(bank *model.Bank) *Service {
	return &Service{bank: bank}
}

// Open creates a bank named bankName and registers one account per seed.
func Open(bankName string, seeds []Seed) *Service {
	bank := model.NewBank(bankName)
	for _, s := range seeds {
		bank.AddAccount(model.NewAccount(s.Name, s.Balance))
	}
	return NewService(bank)
}

// Load reads a balance listing from path and opens a bank from it.
// Bank IDs in the file are ignored; the new bank assigns its own.
func Load(bankName, path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening accounts file: %w", err)
	}
	defer f.Close()

	rows, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts file: %w", err)
	}
	seeds := make([]Seed, len(rows))
	for i, r := range rows {
		seeds[i] = Seed{Name: r.Name, Balance: r.Balance}
	}
	return Open(bankName, seeds), nil
}

// Bank returns the underlying bank.
func (s *Service) Bank() *model.Bank {
	return s.bank
}

// All returns all accounts in registration order.
func (s *Service) All() []*model.Account {
	return s.bank.Accounts()
}

// Get returns the first account with the given name.
func (s *Service) Get(name string) (*model.Account, bool) {
	return s.bank.Find(name)
}

// Exists reports whether an account with the given name is registered.
func (s *Service) Exists(name string) bool {
	_, ok := s.bank.Find(name)
	return ok
}

// Total returns the sum of all balances. Duplicate registrations count once
// per registration.
func (s *Service) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.bank.Accounts() {
		total = total.Add(a.Balance())
	}
	return total
}
