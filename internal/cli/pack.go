package cli

import (
	"fmt"

	"github.com/glorpus-work/fskit/pkg/archive"
	"github.com/glorpus-work/fskit/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewPackCmd creates the pack command.
func NewPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <source-dir> <archive>",
		Short: "Pack a directory into a tar.gz archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}

			if err := archive.Pack(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("pack %s: %w", args[0], err)
			}

			logger.Info("archive created", logrus.Fields{"archive": args[1]})
			return nil
		},
	}

	return cmd
}

// NewUnpackCmd creates the unpack command.
func NewUnpackCmd() *cobra.Command {
	var entry string

	cmd := &cobra.Command{
		Use:   "unpack <archive> <destination>",
		Short: "Unpack a tar.gz archive",
		Long:  "Extract an archive into a destination directory, or a single entry with --entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}

			if entry != "" {
				if err := archive.UnpackFile(cmd.Context(), args[0], entry, args[1]); err != nil {
					return fmt.Errorf("unpack %s from %s: %w", entry, args[0], err)
				}
				return nil
			}

			if err := archive.Unpack(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("unpack %s: %w", args[0], err)
			}

			logger.Info("archive extracted", logrus.Fields{"archive": args[0], "destination": args[1]})
			return nil
		},
	}

	cmd.Flags().StringVar(&entry, "entry", "", "extract only this entry from the archive")

	return cmd
}
