// Package resolver merges configuration values from the three fixed sources
// into a single resolved mapping.
//
// Sources are applied in the following priority order (later sources
// override earlier ones):
//  1. Compiled-in defaults, one per catalog descriptor
//  2. Key/value config file (case-insensitive keys, "key = value" lines)
//  3. Argument vector (command-line flags, processed left to right)
//
// The main entry points are [New] for the step-by-step [Resolver] and
// [NewBuilder] for the fluent one-shot variant. The resolver only signals
// typed errors; printing, exit codes, and any other user-visible reaction
// belong to the caller.
package resolver
