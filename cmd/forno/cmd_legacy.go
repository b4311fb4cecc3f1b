package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/forno/app/models"
	"github.com/shashiranjanraj/forno/app/services"
	"github.com/shashiranjanraj/forno/pkg/progress"
)

// The legacy:* commands drive the password-per-order table that predates the
// account registry. Cancellation here is non-interactive: first match in file
// order wins, and the configured admin override credential matches any order.

// forno legacy:create <customer> <password> [--size ...]
var legacyCreateCmd = &cobra.Command{
	Use:   "legacy:create <customer> <password>",
	Short: "Create a legacy order with its own cancellation password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetString("size")

		fmt.Printf("Hello %s\n", args[0])
		progress.Track("Firing the oven", 100, time.Millisecond)

		order, err := services.NewLegacyOrderService().Create(services.CreateInput{
			Customer: args[0],
			Password: args[1],
			Size:     size,
		})
		if err != nil {
			return err
		}

		fmt.Println(color.GreenString("✅ Order for %s created!", order.Customer))
		return nil
	},
}

// forno legacy:cancel <customer> <password>
var legacyCancelCmd = &cobra.Command{
	Use:   "legacy:cancel <customer> <password>",
	Short: "Cancel the first matching legacy order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		victim, overrode, err := services.NewLegacyOrderService().Cancel(args[0], args[1])
		switch {
		case errors.Is(err, services.ErrNoOrdersFound):
			return fmt.Errorf("no orders found for %s", args[0])
		case errors.Is(err, services.ErrInvalidCredentials):
			return fmt.Errorf("no order matches the provided password")
		case err != nil:
			return err
		}

		if overrode {
			fmt.Println(color.GreenString("✅ Order for %s deleted by admin!", victim.Customer))
		} else {
			fmt.Println(color.GreenString("✅ Order for %s cancelled!", victim.Customer))
		}
		return nil
	},
}

// forno legacy:print-orders [admin-password]
var legacyPrintCmd = &cobra.Command{
	Use:   "legacy:print-orders [admin-password]",
	Short: "Display legacy orders (admin password reveals per-order passwords)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminPassword := ""
		if len(args) == 1 {
			adminPassword = args[0]
		}

		orders, reveal, err := services.NewLegacyOrderService().List(adminPassword)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders found.")
			return nil
		}

		if adminPassword != "" && !reveal {
			fmt.Println(color.RedString("❌ Incorrect admin password! Showing orders without passwords."))
		}

		fmt.Println("All orders:")
		for _, o := range orders {
			if reveal {
				fmt.Printf("%s | %s | %s | %s\n", o.Customer, o.Size, o.OrderTime, o.Password)
			} else {
				fmt.Printf("%s | %s | %s\n", o.Customer, o.Size, o.OrderTime)
			}
		}
		return nil
	},
}

func init() {
	legacyCreateCmd.Flags().String("size", models.DefaultSize, "pizza size: small, medium or large")
}
