package cli

import (
	"fmt"
	"strconv"

	"github.com/glorpus-work/fskit/pkg/fsops"
	"github.com/glorpus-work/fskit/pkg/permissions"
	"github.com/spf13/cobra"
)

// NewPermsCmd creates the perms command with subcommands.
func NewPermsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perms",
		Short: "Inspect and convert POSIX permissions",
		Long:  "Show, set and convert POSIX permissions between octal and symbolic notation",
	}

	cmd.AddCommand(
		newPermsShowCmd(),
		newPermsSetCmd(),
		newPermsConvertCmd(),
	)

	return cmd
}

func newPermsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <path>...",
		Short: "Show permissions of paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			for _, path := range args {
				set, err := fsops.PosixPermissions(path)
				if err != nil {
					return fmt.Errorf("read permissions of %s: %w", path, err)
				}
				fmt.Printf("%s: %03d (%s)\n", path, set.Octal(), set.Symbolic())
			}
			return nil
		},
	}
	cmd.Args = cobra.MinimumNArgs(1)

	return cmd
}

func newPermsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <mode> <path>...",
		Short: "Set permissions on paths",
		Long:  "Set permissions given in octal (e.g. 644) or symbolic (e.g. rw-r--r--) notation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}

			set, err := parsePermissions(args[0])
			if err != nil {
				return err
			}

			for _, path := range args[1:] {
				if err := fsops.SetPosixPermissions(path, set); err != nil {
					return fmt.Errorf("set permissions on %s: %w", path, err)
				}
			}
			return nil
		},
	}

	return cmd
}

func newPermsConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <mode>",
		Short: "Convert between octal and symbolic notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := parsePermissions(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("octal:    %03d\n", set.Octal())
			fmt.Printf("symbolic: %s\n", set.Symbolic())
			return nil
		},
	}

	return cmd
}

// parsePermissions accepts either octal digits or a 9-character symbolic string.
func parsePermissions(s string) (permissions.Set, error) {
	if n, err := strconv.Atoi(s); err == nil {
		set, err := permissions.FromOctal(n)
		if err != nil {
			return 0, fmt.Errorf("invalid octal mode %q: %w", s, err)
		}
		return set, nil
	}

	set, err := permissions.FromSymbolic(s)
	if err != nil {
		return 0, fmt.Errorf("invalid symbolic mode %q: %w", s, err)
	}
	return set, nil
}
