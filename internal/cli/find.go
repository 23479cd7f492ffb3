package cli

import (
	"fmt"

	"github.com/glorpus-work/fskit/pkg/search"
	"github.com/spf13/cobra"
)

// NewFindCmd creates the find command.
func NewFindCmd() *cobra.Command {
	var extensions []string

	cmd := &cobra.Command{
		Use:   "find <root> [pattern]",
		Short: "Find files by name pattern",
		Long:  "Walk a directory tree and print files whose name matches the pattern, or filter by extension with --ext",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}

			root := args[0]

			if len(extensions) > 0 {
				matches, err := search.FilterByExtension(root, extensions)
				if err != nil {
					return fmt.Errorf("find in %s: %w", root, err)
				}
				printPaths(matches)
				return nil
			}

			pattern := "*"
			if len(args) == 2 {
				pattern = args[1]
			}

			matches, err := search.Find(root, pattern)
			if err != nil {
				return fmt.Errorf("find in %s: %w", root, err)
			}
			printPaths(matches)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "match files by extension instead of name pattern")

	return cmd
}

// NewGlobCmd creates the glob command.
func NewGlobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glob <root> <pattern>",
		Short: "Find files by glob pattern",
		Long:  "Print files under a root directory matching a glob pattern, with ** for recursive matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}

			matches, err := search.Glob(args[0], args[1])
			if err != nil {
				return fmt.Errorf("glob %s in %s: %w", args[1], args[0], err)
			}
			printPaths(matches)
			return nil
		},
	}

	return cmd
}

// NewSizeCmd creates the size command.
func NewSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size <root>...",
		Short: "Show the total size of directory trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}

			for _, root := range args {
				total, err := search.TotalSize(root)
				if err != nil {
					return fmt.Errorf("size of %s: %w", root, err)
				}
				fmt.Printf("%s: %d bytes\n", root, total)
			}
			return nil
		},
	}

	return cmd
}

func printPaths(paths []string) {
	for _, p := range paths {
		fmt.Println(p)
	}
}
