// Package cli defines the Cobra command tree for the seltrack CLI. Each file
// registers one top-level command (history, favorites, state, etc.) with the
// root command. Commands load the persisted registry through a detached
// host, delegate to internal packages, and only handle flag parsing and
// output formatting.
package cli
