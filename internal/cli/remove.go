package cli

import (
	"fmt"

	"github.com/glorpus-work/fskit/pkg/fsops"
	"github.com/glorpus-work/fskit/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the rm command.
func NewRemoveCmd() *cobra.Command {
	var (
		recursive   bool
		ifExists    bool
		followLinks bool
	)

	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: "Delete files and directories",
		Long:  "Delete files, symlinks and empty directories. Use --recursive to delete directory trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			return runRemove(args, recursive, ifExists, followLinks)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "delete directories and their contents")
	cmd.Flags().BoolVar(&ifExists, "if-exists", false, "do not fail when a path is missing")
	cmd.Flags().BoolVar(&followLinks, "follow-links", false, "delete the contents of symlinked directories too")

	return cmd
}

func runRemove(paths []string, recursive, ifExists, followLinks bool) error {
	for _, path := range paths {
		var err error
		switch {
		case recursive:
			err = fsops.DeleteRecursively(path, fsops.DeleteOptions{FollowLinks: followLinks})
		case ifExists:
			var deleted bool
			deleted, err = fsops.DeleteIfExists(path)
			if err == nil && !deleted {
				logger.Debug("nothing to delete", logrus.Fields{"path": path})
			}
		default:
			err = fsops.Delete(path)
		}
		if err != nil {
			return fmt.Errorf("delete %s: %w", path, err)
		}
	}

	return nil
}
