package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sistemasactivos/ledger/internal/accounts"
	"github.com/sistemasactivos/ledger/internal/operations"
	"github.com/sistemasactivos/ledger/internal/runner"
)

var rejectedColor = color.New(color.FgRed)

func newRunCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <operations.csv>",
		Short: "Apply an operations file and print the resulting balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := readOperations(args[0])
			if err != nil {
				return err
			}

			svc, log, err := openBank(cmd, flags)
			if err != nil {
				return err
			}

			if verrs := operations.ValidateOperations(ops, svc); len(verrs) > 0 {
				msgs := make([]string, len(verrs))
				for i, ve := range verrs {
					msgs[i] = ve.Error()
				}
				return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
			}

			results, err := runner.New(svc.Bank(), log).Run(cmd.Context(), ops)
			out := cmd.OutOrStdout()
			printResults(out, results)
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			return accounts.WriteAccounts(out, svc.All())
		},
	}

	return cmd
}

func readOperations(path string) ([]operations.Operation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening operations file: %w", err)
	}
	defer f.Close()

	ops, err := operations.ReadOperations(f)
	if err != nil {
		return nil, fmt.Errorf("reading operations file: %w", err)
	}
	return ops, nil
}

func printResults(w io.Writer, results []runner.Result) {
	for _, res := range results {
		if res.Rejected() {
			rejectedColor.Fprintf(w, "%s rejected: %v\n", res.Op, res.Err)
			continue
		}
		fmt.Fprintf(w, "%s ok\n", res.Op)
	}
}
