// Package wslpath translates paths between their Windows spelling (C:\foo\bar)
// and their WSL spelling (/mnt/c/foo/bar) for safe and idiomatic use within Go
// projects that script across the Windows / WSL boundary.
//
// This package also contains a mock backend which can be useful for testing, as
// the system-probing functions otherwise read this machine's proc files,
// environment and registry. The mock back-end is disabled by default, and can be
// enabled by building with the wslpathmock tag and using the context returned by
// the WithMock function.
package wslpath
