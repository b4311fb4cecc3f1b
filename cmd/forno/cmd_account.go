package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/forno/app/services"
)

// forno create-account <username> <password> [--status USER|ADMIN]
var createAccountCmd = &cobra.Command{
	Use:   "create-account <username> <password>",
	Short: "Create a new account (USER unless --status says otherwise)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")

		account, err := services.NewAccountService().CreateAccount(services.CreateAccountInput{
			Username: args[0],
			Password: args[1],
			Status:   status,
		})
		if err != nil {
			return err
		}

		fmt.Println(color.GreenString("✅ Account %s created (%s)", account.Username, account.Status))
		return nil
	},
}

// forno delete-account <requester-username> <requester-password> <target-username>
var deleteAccountCmd = &cobra.Command{
	Use:   "delete-account <username> <password> <target>",
	Short: "Delete an account (ADMIN: anyone but self; USER: only self)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		accounts := services.NewAccountService()

		requester, err := accounts.Authenticate(args[0], args[1])
		if err != nil {
			return err
		}
		if err := accounts.DeleteAccount(requester, args[2]); err != nil {
			return err
		}

		fmt.Println(color.GreenString("✅ Account %s deleted", args[2]))
		return nil
	},
}

// forno promote <admin-username> <admin-password> <target-username>
var promoteCmd = &cobra.Command{
	Use:   "promote <admin-username> <admin-password> <target>",
	Short: "Promote an account from USER to ADMIN",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		accounts := services.NewAccountService()

		requester, err := accounts.Authenticate(args[0], args[1])
		if err != nil {
			return err
		}
		already, err := accounts.Promote(requester, args[2])
		if err != nil {
			return err
		}
		if already {
			fmt.Printf("%s is already an ADMIN — nothing to do.\n", args[2])
			return nil
		}

		fmt.Println(color.GreenString("✅ %s promoted to ADMIN", args[2]))
		return nil
	},
}

func init() {
	createAccountCmd.Flags().String("status", "", "initial status: USER or ADMIN (default USER)")
}
