// Package testutil provides utilities for testing dotaudit components.
//
// Key components:
//   - TestEnvironment: a programs directory and home directory, either in
//     memory (afero MemMapFs) or under t.TempDir on the real filesystem
//   - Program / File helpers to declare documents and on-disk files inline
//
// All test data should be defined inline, not in external files.
package testutil
