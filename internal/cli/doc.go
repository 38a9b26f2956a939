// Package cli defines the Cobra command tree for the simpkg CLI. Each file
// in this package registers one top-level command (list, resolve, doctor,
// etc.) with the root command. Commands delegate discovery and resolution to
// the registry package and only handle flags, output formatting, and logging.
package cli
