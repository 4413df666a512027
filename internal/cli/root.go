// Package cli wires the ledger's subcommands. The binary exposes `serve`,
// which runs migrations and starts the HTTP API, and `migrate`, which only
// applies pending migrations and exits.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bytebank-ledger",
	Short: "Transactional core of the Bytebank account ledger",
	Long: `bytebank-ledger runs the banking ledger service: account opening and
closure, deposits, withdrawals and transfers with an append-only operation
history, plus read-only reporting over the resulting state.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
