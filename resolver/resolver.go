// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"maps"

	"github.com/MKhiriev/go-conf-resolver/options"
)

// Settings maps every catalog descriptor to its current string value.
// A resolver keeps the mapping total: each descriptor has exactly one entry
// from construction onward, and entries are only ever overwritten, never
// removed.
type Settings map[options.Descriptor]string

// Resolver owns a [Settings] mapping seeded from catalog defaults and
// progressively overwritten by config-file parsing and argument-vector
// parsing. It is not safe for concurrent use; the expected lifecycle is a
// single sequence of calls during program startup.
type Resolver struct {
	catalog  options.Catalog
	settings Settings
}

// New constructs a Resolver for catalog with every descriptor set to its
// default value.
func New(catalog options.Catalog) *Resolver {
	settings := make(Settings, len(catalog))
	for _, d := range catalog {
		settings[d] = d.DefaultValue()
	}

	return &Resolver{
		catalog:  catalog,
		settings: settings,
	}
}

// Lookup resolves a flag token ("-x" or "--example") to its catalog
// descriptor. The second return value is false when no descriptor matches.
func (r *Resolver) Lookup(token string) (options.Descriptor, bool) {
	return r.catalog.Lookup(token)
}

// ApplyArgumentVector processes args as <flag> <value> pairs, left to right,
// overwriting the setting of each resolved flag. Later occurrences of the
// same flag override earlier ones, and every value written here overrides
// config-file and default values.
//
// Errors abort the whole call but do not roll back entries already written:
//   - *UnknownFlagError when a flag token matches no catalog descriptor;
//   - *HelpRequestedError when the help flag ("--help") is encountered — the
//     error carries the catalog usage listing, and the help token consumes
//     no value;
//   - *MissingArgumentError when a flag is the final token with no value
//     following it.
//
// Applying an empty vector is a no-op.
func (r *Resolver) ApplyArgumentVector(args []string) error {
	for i := 0; i < len(args); i += 2 {
		descriptor, ok := r.Lookup(args[i])
		if !ok {
			return &UnknownFlagError{Token: args[i]}
		}

		if descriptor.Matches("--help") {
			return &HelpRequestedError{Usage: r.catalog.Usage()}
		}

		// Every non-help flag consumes exactly one value token;
		// TakesArgument is not consulted.
		if i+1 >= len(args) {
			return &MissingArgumentError{Flag: args[i]}
		}

		r.settings[descriptor] = args[i+1]
	}

	return nil
}

// Settings returns a copy of the current resolved mapping. Mutating the
// returned map does not affect the resolver.
func (r *Resolver) Settings() Settings {
	return maps.Clone(r.settings)
}
