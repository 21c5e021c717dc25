package cmd

import (
	"github.com/dendrascience/nfcname/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the nfcname CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nfcname",
		Short: "nfcname - Rename files and directories to Unicode NFC",
		Long: `nfcname renames every file and directory whose name is not in Unicode
Normalization Form C to its composed equivalent.

Names written by macOS, some archivers and some sync clients are often
decomposed (NFD): they look identical on screen but compare differently
byte for byte. nfcname walks one or more trees concurrently and fixes them
in place, never replacing an existing entry.

Use subcommands to perform different operations:
  - normalize: Rename non-NFC names below one or more paths
  - count: Report how many names in a tree still need normalization
  - seed: Generate a tree of decomposed names for testing`,
		Version: version.GetFullVersion(),
	}

	groupNormalization := "normalization"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupNormalization,
		Title: "Normalization",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	normalizeCmd := NewNormalizeCmd()
	countCmd := NewCountCmd()
	seedCmd := NewSeedCmd()

	normalizeCmd.GroupID = groupNormalization
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
