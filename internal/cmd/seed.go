package cmd

import (
	"fmt"
	"io"

	"github.com/dendrascience/nfcname/util"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand.
// It generates a tree of files and directories with decomposed names.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate test files with decomposed names",
		Long: `Generate a tree of test files whose names are all in NFD.

Files are spread across up to 16 top-level directories, and every third
file is placed one directory deeper, so a normalization run has to rename
directories before their children. Each file contains a single UUID line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.OutOrStdout(), outputPath, fileCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 10000, "Number of files to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(out io.Writer, outputPath string, fileCount int, verbose bool) error {
	if verbose {
		fmt.Fprintf(out, "Generating %d test files in %s\n", fileCount, outputPath)
	}

	stats, err := util.SeedTree(outputPath, fileCount)
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", outputPath, err)
	}

	fmt.Fprintf(out, "Successfully created %d files\n", stats.Files)
	if verbose {
		fmt.Fprintf(out, "Files distributed across %d directories\n", stats.Dirs)
	}
	return nil
}
