package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sistemasactivos/ledger/internal/accounts"
	"github.com/sistemasactivos/ledger/internal/runner"
)

func newTransferCommand(flags *globalFlags) *cobra.Command {
	var from, to, amount string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move funds between two accounts and print the resulting balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}

			svc, log, err := openBank(cmd, flags)
			if err != nil {
				return err
			}

			src, ok := svc.Get(from)
			if !ok {
				return fmt.Errorf("%w %q", runner.ErrUnknownAccount, from)
			}
			dst, ok := svc.Get(to)
			if !ok {
				return fmt.Errorf("%w %q", runner.ErrUnknownAccount, to)
			}

			if err := svc.Bank().Transfer(src, dst, amt); err != nil {
				log.Warn().Err(err).Str("from", from).Str("to", to).Str("amount", amt.String()).Msg("transfer rejected")
				return err
			}
			log.Info().Str("from", from).Str("to", to).Str("amount", amt.String()).Msg("transfer applied")

			return accounts.WriteAccounts(cmd.OutOrStdout(), svc.All())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source account name (required)")
	cmd.Flags().StringVar(&to, "to", "", "destination account name (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to move, as an exact decimal (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
