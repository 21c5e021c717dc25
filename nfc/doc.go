// Package nfc decides whether a filename is already in Unicode Normalization
// Form C and computes the composed form when it is not.
//
// Names that pass the streaming quick check are accepted without allocating.
// Names the quick check cannot settle are fully composed and compared, so a
// name is only reported as needing a rename when its composed form differs
// byte for byte.
package nfc
