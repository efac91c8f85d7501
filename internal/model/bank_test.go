package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankTransfer(t *testing.T) {
	julian := NewAccount("Julian", dec("9500.25"))
	andres := NewAccount("Andrés", dec("1000.12345"))
	bank := NewBank("Banco del Estado")
	bank.AddAccount(julian)
	bank.AddAccount(andres)

	require.NoError(t, bank.Transfer(julian, andres, decimal.NewFromInt(500)))

	assert.Equal(t, "9000.25", julian.Balance().String())
	assert.Equal(t, "1500.12345", andres.Balance().String())
	assert.Equal(t, 2, bank.Len())
	assert.Len(t, bank.Accounts(), 2)
}

func TestBankTransfer_InsufficientFunds(t *testing.T) {
	julian := NewAccount("Julian", dec("9500.25"))
	andres := NewAccount("Andrés", dec("1000.12345"))
	bank := NewBank("Banco del Estado", julian, andres)

	err := bank.Transfer(andres, julian, decimal.NewFromInt(1500))
	assert.Equal(t, ErrInsufficientFunds, err, "error must surface unchanged")
	assert.Equal(t, "Dinero insuficiente", err.Error())

	assert.Equal(t, "1000.12345", andres.Balance().String())
	assert.Equal(t, "9500.25", julian.Balance().String())
}

func TestBankTransfer_WholeBalance(t *testing.T) {
	src := NewAccount("origen", dec("10.5"))
	dst := NewAccount("destino", decimal.Zero)
	bank := NewBank("b", src, dst)

	require.NoError(t, bank.Transfer(src, dst, dec("10.5")))
	assert.True(t, src.Balance().IsZero())
	assert.Equal(t, "10.5", dst.Balance().String())
}

func TestBankTransfer_PreconditionsLeaveBalancesAlone(t *testing.T) {
	src := NewAccount("origen", dec("100"))
	bank := NewBank("b", src)

	assert.ErrorIs(t, bank.Transfer(src, nil, dec("1")), ErrNilAccount)
	assert.ErrorIs(t, bank.Transfer(nil, src, dec("1")), ErrNilAccount)

	noBalance := &Account{}
	noBalance.SetName("sin saldo")
	assert.ErrorIs(t, bank.Transfer(src, noBalance, dec("1")), ErrBalanceUnset)
	assert.Equal(t, "100", src.Balance().String(), "source must not be debited")
}

func TestBankAddAccount(t *testing.T) {
	bank := NewBank("Banco del Estado")
	names := []string{"Julian", "Andrés", "María"}
	for _, n := range names {
		bank.AddAccount(NewAccount(n, decimal.Zero))
	}

	accts := bank.Accounts()
	require.Len(t, accts, len(names))
	for i, a := range accts {
		assert.Equal(t, names[i], a.Name())
		assert.Equal(t, bank.ID(), a.BankID())
	}
}

func TestBankAddAccount_Duplicates(t *testing.T) {
	a := NewAccount("Julian", dec("1"))
	bank := NewBank("b")
	bank.AddAccount(a)
	bank.AddAccount(a)

	assert.Equal(t, 2, bank.Len())
	accts := bank.Accounts()
	assert.Same(t, accts[0], accts[1])
}

func TestBankAddAccount_Reassigns(t *testing.T) {
	a := NewAccount("Julian", dec("1"))
	first := NewBank("primero", a)
	second := NewBank("segundo", a)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, second.ID(), a.BankID(), "back-reference points at the latest bank")
	assert.Equal(t, 1, first.Len())
}

func TestNewBank_Prepopulated(t *testing.T) {
	julian := NewAccount("Julian", dec("9500.25"))
	andres := NewAccount("Andrés", dec("1000.12345"))
	bank := NewBank("Banco del Estado", julian, andres)

	assert.Equal(t, "Banco del Estado", bank.Name())
	assert.Equal(t, []*Account{julian, andres}, bank.Accounts())
	assert.Equal(t, bank.ID(), julian.BankID())
	assert.Equal(t, bank.ID(), andres.BankID())
}

func TestBankAccounts_ReturnsCopy(t *testing.T) {
	bank := NewBank("b", NewAccount("Julian", dec("1")))
	accts := bank.Accounts()
	accts[0] = nil

	assert.NotNil(t, bank.Accounts()[0])
}

func TestBankFind(t *testing.T) {
	first := NewAccount("Julian", dec("1"))
	second := NewAccount("Julian", dec("2"))
	bank := NewBank("b", first, second)

	got, ok := bank.Find("Julian")
	require.True(t, ok)
	assert.Same(t, first, got, "first registration wins")

	_, ok = bank.Find("Andrés")
	assert.False(t, ok)
}
