// Package main provides the challenge command-line interface.
//
// challenge encodes messages with a keyed columnar transposition cipher and
// solves a few small string puzzles. The work is done by the cipher and puzzle
// packages; this binary wires them to a Cobra command tree.
//
// The main binary supports multiple subcommands:
//   - encode: Encode a message with a key
//   - decode: Decode a message encoded with a key
//   - inspect: Show the sorted and numeric forms of a key
//   - keygen: Generate random keys
//   - shortcut: Build a three letter shortcut from a phrase
//   - sortwords: Order words by their embedded numbers
//   - unique: Find the string made of different letters
package main
