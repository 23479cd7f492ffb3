package cli

import (
	"errors"
	"fmt"
	"sort"

	fskiterrors "github.com/glorpus-work/fskit/pkg/errors"
	"github.com/glorpus-work/fskit/pkg/fsops"
	"github.com/glorpus-work/fskit/pkg/search"
	"github.com/spf13/cobra"
)

// NewStatCmd creates the stat command.
func NewStatCmd() *cobra.Command {
	var detectType bool

	cmd := &cobra.Command{
		Use:   "stat <path>...",
		Short: "Show file attributes",
		Long:  "Display size, type, permissions, timestamps and ownership for one or more paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			return runStat(args, detectType)
		},
	}

	cmd.Flags().BoolVar(&detectType, "content-type", false, "detect the MIME type of regular files")

	return cmd
}

func runStat(paths []string, detectType bool) error {
	for i, path := range paths {
		if i > 0 {
			fmt.Println()
		}

		attrs, err := fsops.ReadAllAttributes(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		if detectType && fsops.IsRegularFile(path) {
			mime, err := search.DetectContentType(path)
			if err != nil && !errors.Is(err, fskiterrors.ErrNotFound) {
				return fmt.Errorf("detect content type of %s: %w", path, err)
			}
			if err == nil {
				attrs["content_type"] = mime
			}
		}

		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Printf("%s:\n", path)
		for _, k := range keys {
			fmt.Printf("  %-12s %v\n", k, attrs[k])
		}
	}

	return nil
}
