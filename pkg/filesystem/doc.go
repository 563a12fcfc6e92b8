// Package filesystem provides filesystem implementations for tsscaffold.
//
// This package contains implementations of the types.FS interface: the OS
// filesystem, whose writes go through synthfs operations, an afero-backed
// filesystem used by tests, and a copy-on-write overlay used for dry runs.
package filesystem
