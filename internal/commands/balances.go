package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sistemasactivos/ledger/internal/accounts"
)

func newBalancesCommand(flags *globalFlags) *cobra.Command {
	var showTotal bool

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Print opening balances as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openBank(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := accounts.WriteAccounts(out, svc.All()); err != nil {
				return err
			}
			if showTotal {
				fmt.Fprintf(out, "total,%s\n", svc.Total())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTotal, "total", false, "append a total row")

	return cmd
}
