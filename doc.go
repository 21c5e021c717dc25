// Package main provides the nfcname command-line interface.
//
// nfcname renames files and directories whose names are not in Unicode
// Normalization Form C to their composed equivalents. Trees are walked
// concurrently under a fixed budget of in-flight entries, directories are
// renamed before they are listed, and no rename ever replaces an existing
// entry.
//
// The main binary supports multiple subcommands:
//   - normalize: Rename non-NFC names below one or more paths
//   - count: Report names that still need normalization
//   - seed: Generate a tree of decomposed names for testing
package main
