package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/fskit/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	noColor    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fskit",
		Short: "Filesystem toolkit",
		Long: `fskit is a filesystem toolkit with:
- CLI: inspect, copy, move, delete and create files
- Library: path algebra, permissions, queries and scoped temp resources
- Tooling: search directory trees and pack archives`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor

	// Add subcommands
	cmd.AddCommand(
		cli.NewStatCmd(),
		cli.NewCopyCmd(),
		cli.NewMoveCmd(),
		cli.NewRenameCmd(),
		cli.NewRemoveCmd(),
		cli.NewMkdirCmd(),
		cli.NewCreateCmd(),
		cli.NewLinkCmd(),
		cli.NewPermsCmd(),
		cli.NewFindCmd(),
		cli.NewGlobCmd(),
		cli.NewSizeCmd(),
		cli.NewPackCmd(),
		cli.NewUnpackCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
