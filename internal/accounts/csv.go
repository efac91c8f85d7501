package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/sistemasactivos/ledger/internal/model"
)

const (
	numFields = 3
	colName   = 0
	colBal    = 1
	colBankID = 2
)

// Header is the CSV header for balance listings.
var Header = []string{"account_name", "balance", "bank_id"}

// Row is one line of a balance listing.
type Row struct {
	Name    string
	Balance decimal.Decimal
	BankID  string
}

// ReadAccounts reads a balance listing. The first record is the header.
func ReadAccounts(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteAccounts writes a balance listing for accounts in order.
func WriteAccounts(w io.Writer, accounts []*model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct *model.Account) []string {
	row := make([]string, numFields)
	row[colName] = acct.Name()
	if acct.HasBalance() {
		row[colBal] = acct.Balance().String()
	}
	row[colBankID] = acct.BankID()
	return row
}

// UnmarshalAccount converts a CSV row to a Row.
func UnmarshalAccount(record []string) (Row, error) {
	if len(record) != numFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	bal, err := decimal.NewFromString(record[colBal])
	if err != nil {
		return Row{}, fmt.Errorf("parsing balance %q: %w", record[colBal], err)
	}

	return Row{
		Name:    record[colName],
		Balance: bal,
		BankID:  record[colBankID],
	}, nil
}
