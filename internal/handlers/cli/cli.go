package cli

import (
	"context"
	"os"

	"github.com/gabapcia/paysim/internal/payproc"
	"github.com/gabapcia/paysim/internal/webhookrelay"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the paysim CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Starts the payment processing pipeline.
//   - `demo`: Runs a scripted invoice lifecycle against the in-memory chain.
//   - `observe`: Re-checks one invoice and prints its state.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - pp: The payproc service implementation used by both commands.
//   - relay: The webhookrelay service delivering status-change events.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, pp payproc.Service, relay webhookrelay.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "paysim",
		Description:           "Command-line interface for running the paysim testnet payment simulator.",
		Usage:                 "paysim [command] [flags]",
		Commands: []*cli.Command{
			servePipelineCommand(pp, relay),
			demoCommand(pp),
			observeCommand(pp),
		},
	}

	return app.Run(ctx, os.Args)
}
