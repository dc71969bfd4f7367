// Package options defines the descriptor contract for configurable settings
// and the catalog that enumerates them.
//
// A program declares one [Descriptor] per configurable option — its short and
// long flag spellings, a human-readable description, a default value, and
// whether the flag consumes an argument token. Descriptors are collected into
// a [Catalog], a fixed ordered set that the resolver scans when matching
// command-line tokens and config-file keys.
//
// The catalog is closed by convention: it is declared once at startup and
// never grows at runtime. Every descriptor in a catalog must carry a unique
// short/long flag combination; the package does not enforce this, but a
// duplicate makes token matching ambiguous (first declaration wins).
package options
