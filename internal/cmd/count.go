package cmd

import (
	"fmt"
	"io"

	"github.com/dendrascience/nfcname/util"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand.
// It scans a tree without renaming anything.
func NewCountCmd() *cobra.Command {
	var (
		path    string
		check   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count entries in a directory tree that are not NFC",
		Long: `Count the files, directories and symlinks in a directory tree and report
how many names are not in Unicode Normalization Form C.

The scan runs on a single goroutine and never renames anything or follows
symlinks. Names that are not valid UTF-8 are counted separately; normalize
leaves them alone. With --check the command fails when any name still needs
normalization, which is useful in CI.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runCount(cmd.OutOrStdout(), path, check, verbose)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", ".", "Path to scan")
	cmd.Flags().BoolVar(&check, "check", false, "Fail when any name is not NFC")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every name that needs normalization")

	return cmd
}

func runCount(out io.Writer, path string, check, verbose bool) error {
	stats, err := util.ScanTree(path)
	if err != nil {
		return fmt.Errorf("error scanning %s: %w", path, err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"Entries", "Count"})
	t.AppendRows([]table.Row{
		{"Files", stats.Files},
		{"Directories", stats.Dirs},
		{"Symlinks", stats.Symlinks},
		{"Non-UTF-8 names", stats.NonUTF8},
	})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Needing NFC", stats.NonNFC()})
	t.Render()
	if verbose {
		for _, p := range stats.Pending {
			fmt.Fprintf(out, "  %q\n", p)
		}
	}

	if check && stats.NonNFC() > 0 {
		return fmt.Errorf("%w: %d below %s", util.ErrNotNormalized, stats.NonNFC(), path)
	}
	return nil
}
