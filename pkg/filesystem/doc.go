// Package filesystem provides filesystem implementations for dotaudit.
//
// This package contains implementations of the types.FS interface backed by
// afero: the real OS filesystem and an in-memory one for tests.
package filesystem
