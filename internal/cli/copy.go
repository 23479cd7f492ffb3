package cli

import (
	"fmt"

	"github.com/glorpus-work/fskit/pkg/fsops"
	"github.com/glorpus-work/fskit/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewCopyCmd creates the cp command.
func NewCopyCmd() *cobra.Command {
	var (
		recursive     bool
		replace       bool
		attrs         bool
		preserveLinks bool
	)

	cmd := &cobra.Command{
		Use:   "cp <source> <destination>",
		Short: "Copy a file or directory",
		Long:  "Copy a file, symlink or directory. Directories are copied shallow unless --recursive is given",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			return runCopy(args[0], args[1], recursive, fsops.CopyOptions{
				ReplaceExisting: replace,
				CopyAttributes:  attrs,
				PreserveLinks:   preserveLinks,
			})
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "copy directories and their contents")
	cmd.Flags().BoolVarP(&replace, "replace", "f", false, "replace an existing destination")
	cmd.Flags().BoolVarP(&attrs, "attrs", "a", false, "copy permissions and modification time")
	cmd.Flags().BoolVar(&preserveLinks, "preserve-links", false, "copy symlinks as symlinks instead of following them")

	return cmd
}

func runCopy(from, to string, recursive bool, opts fsops.CopyOptions) error {
	var err error
	if recursive {
		err = fsops.CopyRecursively(from, to, opts)
	} else {
		err = fsops.Copy(from, to, opts)
	}
	if err != nil {
		return fmt.Errorf("copy %s to %s: %w", from, to, err)
	}

	logger.Debug("copy complete", logrus.Fields{"from": from, "to": to})
	return nil
}
