package operations

import (
	"fmt"

	"github.com/sistemasactivos/ledger/internal/id"
)

// ValidationError describes one problem with an operation.
type ValidationError struct {
	Rule        string
	OpID        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Rule, e.OpID, e.Description)
}

// AccountChecker tests whether an account name is registered.
type AccountChecker interface {
	Exists(name string) bool
}

// ValidateOperations checks ops against the registered accounts. Amount signs
// are not checked: a negative debit is a credit, same as on the account itself.
func ValidateOperations(ops []Operation, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	for _, op := range ops {
		if !op.Kind.Valid() {
			errs = append(errs, ValidationError{
				Rule:        "kind",
				OpID:        op.ID,
				Description: fmt.Sprintf("unknown kind %q", op.Kind),
			})
		}

		if !accounts.Exists(op.Account) {
			errs = append(errs, ValidationError{
				Rule:        "account",
				OpID:        op.ID,
				Description: fmt.Sprintf("unknown account %q", op.Account),
			})
		}

		switch {
		case op.Kind == KindTransfer && op.Counterparty == "":
			errs = append(errs, ValidationError{
				Rule:        "counterparty",
				OpID:        op.ID,
				Description: "transfer needs a counterparty",
			})
		case op.Kind == KindTransfer && !accounts.Exists(op.Counterparty):
			errs = append(errs, ValidationError{
				Rule:        "counterparty",
				OpID:        op.ID,
				Description: fmt.Sprintf("unknown account %q", op.Counterparty),
			})
		case op.Kind != KindTransfer && op.Counterparty != "":
			errs = append(errs, ValidationError{
				Rule:        "counterparty",
				OpID:        op.ID,
				Description: fmt.Sprintf("%s takes no counterparty", op.Kind),
			})
		}
	}

	// IDs must be unique and cover 1..N.
	seen := make(map[int]string)
	for _, op := range ops {
		seq, err := id.ParseOperationID(op.ID)
		if err != nil {
			errs = append(errs, ValidationError{
				Rule:        "id",
				OpID:        op.ID,
				Description: err.Error(),
			})
			continue
		}
		if _, dup := seen[seq]; dup {
			errs = append(errs, ValidationError{
				Rule:        "id",
				OpID:        op.ID,
				Description: "duplicate operation ID",
			})
			continue
		}
		seen[seq] = op.ID
	}
	for i := 1; i <= len(seen); i++ {
		if _, ok := seen[i]; !ok {
			errs = append(errs, ValidationError{
				Rule:        "id",
				OpID:        id.FormatOperationID(i),
				Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seen)),
			})
		}
	}

	return errs
}
