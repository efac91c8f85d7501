package operations

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind names the balance mutation an operation performs.
type Kind string

const (
	KindDebit    Kind = "debit"
	KindCredit   Kind = "credit"
	KindTransfer Kind = "transfer"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindDebit, KindCredit, KindTransfer:
		return true
	}
	return false
}

// Operation is a row in an operations file. For transfers Account is the
// source and Counterparty the destination.
type Operation struct {
	ID           string
	Kind         Kind
	Account      string
	Counterparty string
	Amount       decimal.Decimal
}

func (o Operation) String() string {
	if o.Kind == KindTransfer {
		return fmt.Sprintf("%s %s %s -> %s %s", o.ID, o.Kind, o.Account, o.Counterparty, o.Amount)
	}
	return fmt.Sprintf("%s %s %s %s", o.ID, o.Kind, o.Account, o.Amount)
}
