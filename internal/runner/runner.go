package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sistemasactivos/ledger/internal/model"
	"github.com/sistemasactivos/ledger/internal/operations"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

// ErrUnknownAccount is returned when an operation names an unregistered account.
var ErrUnknownAccount = errors.New("unknown account")

// Ledger resolves accounts by name and moves funds between them.
// *model.Bank satisfies it.
type Ledger interface {
	Find(name string) (*model.Account, bool)
	Transfer(src, dst *model.Account, amount decimal.Decimal) error
}

// Balance is an account balance observed right after an operation.
type Balance struct {
	Name    string
	Balance decimal.Decimal
}

// Result records the outcome of one operation. Err is set only for
// rejections that did not stop the run.
type Result struct {
	Op       operations.Operation
	Err      error
	Balances []Balance
}

// Rejected reports whether the operation was refused.
func (r Result) Rejected() bool { return r.Err != nil }

// Runner applies operations to a Ledger in order.
type Runner struct {
	ledger Ledger
	log    zerolog.Logger
}

// New creates a Runner.
func New(ledger Ledger, log zerolog.Logger) *Runner {
	return &Runner{ledger: ledger, log: log}
}

// Run applies ops in order. Insufficient funds is recorded on the result and
// the run continues; any other failure stops the run and is returned along
// with the results gathered so far.
func (r *Runner) Run(ctx context.Context, ops []operations.Operation) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := r.apply(op)
		if err != nil {
			r.log.Error().Err(err).Str("op", op.ID).Msg("operation failed")
			return results, fmt.Errorf("%s: %w", op.ID, err)
		}
		if res.Rejected() {
			r.log.Warn().Err(res.Err).Str("op", op.ID).Str("kind", string(op.Kind)).
				Str("account", op.Account).Str("amount", op.Amount.String()).Msg("operation rejected")
		} else {
			r.log.Debug().Str("op", op.ID).Str("kind", string(op.Kind)).
				Str("account", op.Account).Str("amount", op.Amount.String()).Msg("operation applied")
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) apply(op operations.Operation) (Result, error) {
	acct, err := r.find(op.Account)
	if err != nil {
		return Result{}, err
	}

	res := Result{Op: op}
	touched := []*model.Account{acct}

	var opErr error
	switch op.Kind {
	case operations.KindDebit:
		opErr = acct.Debit(op.Amount)
	case operations.KindCredit:
		opErr = acct.Credit(op.Amount)
	case operations.KindTransfer:
		dst, err := r.find(op.Counterparty)
		if err != nil {
			return Result{}, err
		}
		touched = append(touched, dst)
		opErr = r.ledger.Transfer(acct, dst, op.Amount)
	default:
		return Result{}, fmt.Errorf("unknown operation kind %q", op.Kind)
	}

	switch {
	case errors.Is(opErr, model.ErrInsufficientFunds):
		res.Err = opErr
	case opErr != nil:
		return Result{}, opErr
	}

	for _, a := range touched {
		res.Balances = append(res.Balances, Balance{Name: a.Name(), Balance: a.Balance()})
	}
	return res, nil
}

func (r *Runner) find(name string) (*model.Account, error) {
	acct, ok := r.ledger.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAccount, name)
	}
	return acct, nil
}
