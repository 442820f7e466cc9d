// Package store provides host.OptionStore implementations: an in-memory map
// for tests and a TOML file for small standalone installs. See the sqlite
// subpackage for a database backed store.
//
// Stored values are always a string or a []string; Normalize converts other
// inputs to one of those forms.
package store
