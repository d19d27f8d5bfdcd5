// Package cmd provides the command-line interface implementation for challenge.
//
// This package contains all the subcommand implementations for the challenge
// CLI tool. It uses the Cobra library for command structure and Fang for
// styling, Viper (through internal/config) for defaults and Zap for logging.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, config and logger setup
//   - encode, decode: Keyed transposition of messages
//   - inspect: Sorted and numeric forms of a key
//   - keygen: Random key generation
//   - shortcut, sortwords, unique: String puzzles
//
// Each command is implemented in its own file with a constructor function that
// returns a *cobra.Command. The cipher and puzzle packages do the actual work;
// commands only parse input and print results.
package cmd
