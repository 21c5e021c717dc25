package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Scan errors
	ErrNotNormalized = errors.New("names are not in NFC")

	// Resource limit errors
	ErrUnsupportedPlatform = errors.New("open file limit cannot be adjusted on this platform")

	// Seeding errors
	ErrInvalidCount = errors.New("file count must be positive")
)
