package cli

import (
	"fmt"

	"github.com/glorpus-work/fskit/pkg/fsops"
	"github.com/glorpus-work/fskit/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewMoveCmd creates the mv command.
func NewMoveCmd() *cobra.Command {
	var (
		replace bool
		atomic  bool
	)

	cmd := &cobra.Command{
		Use:   "mv <source> <destination>",
		Short: "Move a file or directory",
		Long:  "Move a file or directory, falling back to copy and delete across filesystems unless --atomic is given",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			return runMove(args[0], args[1], fsops.MoveOptions{
				ReplaceExisting: replace,
				AtomicMove:      atomic,
			})
		},
	}

	cmd.Flags().BoolVarP(&replace, "replace", "f", false, "replace an existing destination")
	cmd.Flags().BoolVar(&atomic, "atomic", false, "fail instead of copying when the move crosses filesystems")

	return cmd
}

func runMove(from, to string, opts fsops.MoveOptions) error {
	if err := fsops.Move(from, to, opts); err != nil {
		return fmt.Errorf("move %s to %s: %w", from, to, err)
	}

	logger.Debug("move complete", logrus.Fields{"from": from, "to": to})
	return nil
}

// NewRenameCmd creates the rename command.
func NewRenameCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "rename <path> <new-name>",
		Short: "Rename a file or directory in place",
		Long:  "Give a file or directory a new name inside its current parent directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			if err := fsops.Rename(args[0], args[1], fsops.MoveOptions{ReplaceExisting: replace}); err != nil {
				return fmt.Errorf("rename %s to %s: %w", args[0], args[1], err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&replace, "replace", "f", false, "replace an existing destination")

	return cmd
}
