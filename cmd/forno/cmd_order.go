package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/forno/app/models"
	"github.com/shashiranjanraj/forno/app/services"
	"github.com/shashiranjanraj/forno/pkg/progress"
)

// forno order <username> <password> [--size small|medium|large]
var orderCmd = &cobra.Command{
	Use:   "order <username> <password>",
	Short: "Place a new order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetString("size")

		account, err := services.NewAccountService().Authenticate(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Hello %s\n", account.Username)
		progress.Track("Firing the oven", 100, time.Millisecond)

		order, err := services.NewOrderService().Place(account, size)
		if err != nil {
			return err
		}

		fmt.Println(color.GreenString("✅ Order for %s created! (#%s, %s, %s)",
			order.Username, order.ID, order.Size, order.OrderTime))
		return nil
	},
}

// forno list-orders <username> <password>
var listOrdersCmd = &cobra.Command{
	Use:   "list-orders <username> <password>",
	Short: "List your orders (ADMIN sees everyone's)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := services.NewAccountService().Authenticate(args[0], args[1])
		if err != nil {
			return err
		}

		orders, err := services.NewOrderService().List(account)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tSIZE\tTIME")
		fmt.Fprintln(w, "--\t--------\t----\t----")
		for _, o := range orders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Username, o.Size, o.OrderTime)
		}
		return w.Flush()
	},
}

// forno cancel <username> <password> [--for <owner>]
//
// With one matching order the cancellation is immediate. With several, the
// candidates are listed and one is picked by 1-based index — a blocking read
// with no timeout, which is fine for a single-shot CLI.
var cancelCmd = &cobra.Command{
	Use:   "cancel <username> <password>",
	Short: "Cancel one of your orders (interactive when ambiguous)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("for")

		account, err := services.NewAccountService().Authenticate(args[0], args[1])
		if err != nil {
			return err
		}

		orders := services.NewOrderService()
		candidates, err := orders.CancelCandidates(account, owner)
		if err != nil {
			return err
		}

		selection := 1
		if len(candidates) > 1 {
			fmt.Println("Several orders match — pick one to cancel:")
			for i, o := range candidates {
				fmt.Printf("  %d) #%s  %s  %s\n", i+1, o.ID, o.Size, o.OrderTime)
			}
			fmt.Print("Cancel which order? ")

			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil {
				return services.ErrInvalidSelection
			}
			n, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return services.ErrInvalidSelection
			}
			selection = n
		}

		victim, err := orders.Cancel(account, owner, selection)
		if err != nil {
			return err
		}

		fmt.Println(color.GreenString("✅ Order for %s cancelled! (#%s)", victim.Username, victim.ID))
		return nil
	},
}

func init() {
	orderCmd.Flags().String("size", models.DefaultSize, "pizza size: small, medium or large")
	cancelCmd.Flags().String("for", "", "cancel on behalf of another user (ADMIN + ADMIN_CANCEL_OVERRIDE only)")
}
