package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree with its own flag state.
func newRootCmd() *cobra.Command {
	flags := &GlobalFlags{}

	root := &cobra.Command{
		Use:   "drilltour",
		Short: "drilltour - drilling path optimizer",
		Long: `drilltour reads a drilling board (grid size followed by a 0/1 grid)
and computes a short closed tour through its holes with adaptive tabu search.

Every solve writes an event log next to the board; its FINAL_VALUE line is
the contract read by tuning scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.Validate()
		},
	}

	RegisterGlobalFlags(root, flags)

	root.AddCommand(newSolveCmd(flags))
	root.AddCommand(newReplayCmd(flags))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context, root *cobra.Command) error {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return root.ExecuteContext(ctx)
}

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("drilltour " + version)
		},
	}
}
