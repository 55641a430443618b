package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/paysim/internal/payproc"
	"github.com/gabapcia/paysim/internal/webhookrelay"

	"github.com/urfave/cli/v3"
)

// servePipelineCommand returns a CLI command that starts the payment
// processing pipeline, including the webhook relay worker and the background
// invoice expiry sweeper.
//
// Usage example:
//
//	paysim serve
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func servePipelineCommand(pp payproc.Service, relay webhookrelay.Service) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the payment processing pipeline including webhook delivery and invoice expiry sweeping.",
		Usage:       "Initializes and runs the full pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			if err := relay.Start(ctx); err != nil {
				return err
			}
			defer relay.Close()

			if err := pp.Start(ctx); err != nil {
				return err
			}
			defer pp.Close()

			<-quit
			return nil
		},
	}
}
