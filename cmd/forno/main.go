package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/forno/config"
	"github.com/shashiranjanraj/forno/pkg/storage"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("❌ %v", err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forno",
	Short: "forno — pizza orders from the command line",
	Long: "Forno places and manages pizza orders under per-account authentication,\n" +
		"backed by flat CSV tables on a local or S3 storage disk.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		storage.Connect()
		return nil
	},
}

func init() {
	// Accounts
	rootCmd.AddCommand(createAccountCmd)
	rootCmd.AddCommand(deleteAccountCmd)
	rootCmd.AddCommand(promoteCmd)

	// Orders
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(listOrdersCmd)

	// Legacy password-per-order table
	rootCmd.AddCommand(legacyCreateCmd)
	rootCmd.AddCommand(legacyCancelCmd)
	rootCmd.AddCommand(legacyPrintCmd)

	// Maintenance
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(hashOverrideCmd)
}
