package cli

import (
	"fmt"
	"io"

	"github.com/glorpus-work/fskit/pkg/fsops"
	"github.com/glorpus-work/fskit/pkg/permissions"
	"github.com/spf13/cobra"
)

// NewMkdirCmd creates the mkdir command.
func NewMkdirCmd() *cobra.Command {
	var (
		parents bool
		mode    int
	)

	cmd := &cobra.Command{
		Use:   "mkdir <path>...",
		Short: "Create directories",
		Long:  "Create directories, optionally creating missing parents with --parents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			perm := configDirMode(cfg)
			if cmd.Flags().Changed("mode") {
				perm, err = permissions.FromOctal(mode)
				if err != nil {
					return fmt.Errorf("invalid mode %d: %w", mode, err)
				}
			}

			for _, path := range args {
				if parents {
					err = fsops.CreateDirectoriesPerm(path, perm)
				} else {
					err = fsops.CreateDirectoryPerm(path, perm)
				}
				if err != nil {
					return fmt.Errorf("create directory %s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "create missing parent directories")
	cmd.Flags().IntVarP(&mode, "mode", "m", 0, "octal permission mode, e.g. 755")

	return cmd
}

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	var (
		content   string
		fromStdin bool
		mode      int
	)

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a new file",
		Long:  "Create a new file, failing if it already exists. Content comes from --content or --stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			data := []byte(content)
			if fromStdin {
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			perm := configFileMode(cfg)
			if cmd.Flags().Changed("mode") {
				perm, err = permissions.FromOctal(mode)
				if err != nil {
					return fmt.Errorf("invalid mode %d: %w", mode, err)
				}
			}

			if err := fsops.CreateFilePerm(args[0], data, perm); err != nil {
				return fmt.Errorf("create file %s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "initial file content")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read initial content from standard input")
	cmd.Flags().IntVarP(&mode, "mode", "m", 0, "octal permission mode, e.g. 644")

	return cmd
}

// NewLinkCmd creates the link command.
func NewLinkCmd() *cobra.Command {
	var symbolic bool

	cmd := &cobra.Command{
		Use:   "link <target> <link>",
		Short: "Create a hard link or symlink",
		Long:  "Create a hard link to an existing file, or a symlink with --symbolic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}

			var err error
			if symbolic {
				err = fsops.CreateSymlink(args[0], args[1])
			} else {
				err = fsops.CreateLink(args[0], args[1])
			}
			if err != nil {
				return fmt.Errorf("create link %s: %w", args[1], err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&symbolic, "symbolic", "s", false, "create a symbolic link instead of a hard link")

	return cmd
}
