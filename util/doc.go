// Package util provides support code for the nfcname commands that is not
// part of the rename walk itself.
//
// Key Components:
//
// Resource Limits:
//   - RaiseOpenFileLimit lifts the RLIMIT_NOFILE soft limit to the hard limit,
//     capped by fs.nr_open on Linux and kern.maxfilesperproc on Darwin
//   - FileLimit.Low flags limits below SafeOpenFiles
//
// Scanning:
//   - ScanTree walks a tree on one goroutine and reports the names a
//     normalization run would rename, without renaming anything
//
// Seeding:
//   - SeedTree generates files and directories with decomposed names,
//     bucketed by a colour hash of random UUIDs
//
// All errors are sentinel values from errors.go and can be checked with
// errors.Is.
package util
