// Package fixture reads and writes a flat scenario-file format for matcher
// test cases: a pattern SMILES string, an options string, a target SMILES
// string, and then one expected match per line as a parenthesized
// space-separated target-id list, terminated by the empty-list sentinel
// "()". Only this package's own tests use it; the submatch tests build
// their molecules directly.
//
// This is a line format, not a grammar, so Load parses it with bufio and
// strings rather than reaching for a parser generator the way the smiles
// package does.
package fixture
