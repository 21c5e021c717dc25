package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dendrascience/nfcname/internal/logging"
	"github.com/dendrascience/nfcname/renamer"
	"github.com/dendrascience/nfcname/util"
	"github.com/spf13/cobra"
)

// NewNormalizeCmd creates and returns the normalize subcommand.
func NewNormalizeCmd() *cobra.Command {
	var (
		opts  = renamer.DefaultOptions()
		color string
	)

	cmd := &cobra.Command{
		Use:   "normalize PATH...",
		Short: "Rename files and directories to NFC",
		Long: `Rename every file and directory below each PATH whose name is not in
Unicode Normalization Form C.

Each PATH may be a file, a directory or a symlink; the PATH itself is
renamed too when its last component is not NFC. Directories are renamed
before they are listed, so their children are always found under the new
name. A rename never replaces an existing entry: when both the composed and
the decomposed name exist, the rename is reported as an error and both
entries are left alone.

One line is written to stderr per dry-run, failure or skipped directory,
and per success with --verbose, followed by a summary. The exit status is
non-zero when any rename failed.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := logging.ParseColorMode(color)
			if err != nil {
				return err
			}
			return runNormalize(cmd.Context(), cmd.ErrOrStderr(), args, opts, mode)
		},
	}

	cmd.Flags().BoolVarP(&opts.FollowSymlinks, "follow-symlinks", "L", false, "Descend into directories reached through symlinks")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log every successful rename")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Report the renames without performing them")
	cmd.Flags().IntVarP(&opts.Concurrency, "jobs", "j", renamer.DefaultConcurrency, "Maximum number of entries processed at once")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Abort when a directory cannot be listed")
	cmd.Flags().StringVar(&color, "color", string(logging.ColorAuto), "Colour output: auto, always or never")

	return cmd
}

func runNormalize(ctx context.Context, out io.Writer, roots []string, opts renamer.Options, mode logging.ColorMode) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	log := logging.New(out, mode)
	raiseFileLimit(log)

	summary, err := renamer.Run(ctx, roots, opts, log)
	log.Summary(summary)
	if err != nil {
		return err
	}
	if summary.ExitCode() != 0 {
		return fmt.Errorf("%w: %d of %d", renamer.ErrRenameFailed, summary.Failed, summary.Failed+summary.Succeeded)
	}
	return nil
}

// raiseFileLimit lifts RLIMIT_NOFILE before a walk. Problems are only
// warned about: a low limit slows a run down, it does not make it wrong.
func raiseFileLimit(log *logging.Logger) {
	limit, err := util.RaiseOpenFileLimit()
	if err != nil {
		log.Warn("could not raise the open file limit: %v", err)
		return
	}
	if limit.Low() {
		log.Warn("open file limit is %d (hard %d), below %d; large trees may run out of file descriptors",
			limit.Soft, limit.Hard, util.SafeOpenFiles)
	}
}
