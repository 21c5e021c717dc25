// Package cmd provides the command-line interface implementation for nfcname.
//
// It uses the Cobra library for command structure; main wraps the root command
// with Fang for styled help and errors.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - normalize: Concurrent NFC renaming of one or more trees
//   - count: Read-only scan reporting names that are not NFC
//   - seed: Generation of decomposed test trees
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The commands delegate to the renamer
// package for the walk and to the util package for scanning, seeding and
// resource limits.
package cmd
