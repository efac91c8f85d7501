package operations

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sistemasactivos/ledger/internal/id"
)

// Header is the CSV header for operations files.
const Header = "op_id,kind,account,counterparty,amount"

const (
	numFields  = 5
	colID      = 0
	colKind    = 1
	colAccount = 2
	colCparty  = 3
	colAmount  = 4
)

// ReadOperations reads all operations from r. Rows with an empty op_id are
// numbered by their position in the file.
func ReadOperations(r io.Reader) ([]Operation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading operations CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var ops []Operation
	for i, rec := range records[1:] {
		op, err := UnmarshalOperation(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if op.ID == "" {
			op.ID = id.FormatOperationID(i + 1)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// WriteOperations writes ops to w (including header).
func WriteOperations(w io.Writer, ops []Operation) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, op := range ops {
		if err := cw.Write(MarshalOperation(op)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalOperation converts an Operation to a CSV row.
func MarshalOperation(op Operation) []string {
	row := make([]string, numFields)
	row[colID] = op.ID
	row[colKind] = string(op.Kind)
	row[colAccount] = op.Account
	row[colCparty] = op.Counterparty
	row[colAmount] = op.Amount.String()
	return row
}

// UnmarshalOperation converts a CSV row to an Operation. The kind is not
// checked here; see ValidateOperations.
func UnmarshalOperation(record []string) (Operation, error) {
	if len(record) != numFields {
		return Operation{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Operation{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Operation{
		ID:           record[colID],
		Kind:         Kind(strings.ToLower(record[colKind])),
		Account:      record[colAccount],
		Counterparty: record[colCparty],
		Amount:       amount,
	}, nil
}
