// Package filesystem provides the filesystem abstraction used by the file
// utilities, with an OS implementation and an afero-backed one for tests,
// plus conditional writes and empty-directory pruning built on top of it.
package filesystem
