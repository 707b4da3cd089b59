// Package filesystem provides filesystem implementations for woah.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by real builds and an afero-backed one that
// tests run against an in-memory filesystem.
package filesystem
