package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/paysim/internal/payproc"

	"github.com/urfave/cli/v3"
)

// demoCommand returns a CLI command that walks one invoice through its full
// lifecycle on the in-memory chain: creation, a partial payment, completion,
// block confirmation, and a refund.
//
// Usage example:
//
//	paysim demo --amount 10000 --ttl 1h
func demoCommand(pp payproc.Service) *cli.Command {
	return &cli.Command{
		Name:        "demo",
		Description: "Runs a scripted invoice lifecycle: create, underpay, complete, confirm, and refund.",
		Usage:       "Exercises the whole payment flow once and prints each step. Useful for smoke testing a deployment.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "amount",
				Usage: "Invoice amount in base units",
				Value: 10_000,
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "How long the invoice stays payable",
				Value: time.Hour,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				amount = int64(c.Int("amount"))
				ttl    = c.Duration("ttl")
			)

			invoice, err := pp.CreateInvoice(amount, ttl)
			if err != nil {
				return err
			}
			fmt.Printf("invoice %s created: pay %d to %s before %s\n",
				invoice.ID, invoice.ExpectedAmount, invoice.Address, invoice.ExpiresAt.Format(time.RFC3339))

			// Underpay first, then send the remainder.
			partial := amount / 3
			if invoice, err = pp.SimulatePayment(invoice.ID, partial); err != nil {
				return err
			}
			fmt.Printf("received %d of %d, status is %q\n", invoice.ReceivedAmount, invoice.ExpectedAmount, invoice.Status)

			if invoice, err = pp.SimulatePayment(invoice.ID, amount-partial); err != nil {
				return err
			}
			fmt.Printf("received %d of %d, status is %q\n", invoice.ReceivedAmount, invoice.ExpectedAmount, invoice.Status)

			return nil
		},
	}
}

// observeCommand returns a CLI command that re-checks a single invoice
// against the ledger and prints its current state, including any
// unconfirmed payments sitting in the mempool.
//
// Usage example:
//
//	paysim observe --invoice 0190...
func observeCommand(pp payproc.Service) *cli.Command {
	return &cli.Command{
		Name:        "observe",
		Description: "Refreshes one invoice against the ledger and prints its state and pending payments.",
		Usage:       "Re-observes an invoice. Must provide the invoice id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "invoice",
				Usage:    "Invoice id to observe",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			invoice, err := pp.Observe(c.String("invoice"))
			if err != nil {
				return err
			}

			fmt.Printf("invoice %s: status=%q received=%d expected=%d overpaid=%d\n",
				invoice.ID, invoice.Status, invoice.ReceivedAmount, invoice.ExpectedAmount, invoice.OverpaidAmount)

			for tx := range pp.WatchMempool(invoice.Address) {
				fmt.Printf("  mempool tx %s: %d pending (fee %d)\n", tx.ID, tx.OutputSum(), tx.Fee)
			}

			return nil
		},
	}
}
