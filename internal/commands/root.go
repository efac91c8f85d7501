package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sistemasactivos/ledger/internal/accounts"
	"github.com/sistemasactivos/ledger/internal/buildinfo"
	"github.com/sistemasactivos/ledger/internal/config"
	"github.com/sistemasactivos/ledger/internal/logging"
)

// globalFlags are shared by every command that opens a bank.
type globalFlags struct {
	configPath   string
	accountsPath string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:     "ledger",
		Short:   "Exact-decimal accounts and transfers",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", config.FileName, "path to ledger.yaml")
	rootCmd.PersistentFlags().StringVar(&flags.accountsPath, "accounts", "", "CSV of opening balances (replaces the configured accounts)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newBalancesCommand(&flags))
	rootCmd.AddCommand(newTransferCommand(&flags))
	rootCmd.AddCommand(newRunCommand(&flags))

	return rootCmd
}

// openBank loads the config and opens a bank seeded from it.
func openBank(cmd *cobra.Command, flags *globalFlags) (*accounts.Service, zerolog.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("loading config: %w", err)
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.Log)

	if flags.accountsPath != "" {
		svc, err := accounts.Load(cfg.Bank.Name, flags.accountsPath)
		if err != nil {
			return nil, log, err
		}
		log.Debug().Str("path", flags.accountsPath).Int("accounts", len(svc.All())).Msg("loaded opening balances")
		return svc, log, nil
	}

	svc := accounts.Open(cfg.Bank.Name, cfg.Seeds())
	log.Debug().Str("bank", cfg.Bank.Name).Int("accounts", len(svc.All())).Msg("opened bank")
	return svc, log, nil
}
