// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import "strings"

// Catalog is the fixed, ordered set of all descriptors a program accepts.
// Enumeration order is declaration order; [Catalog.Lookup] returns the first
// match in that order.
type Catalog []Descriptor

// Lookup scans the catalog for the first descriptor whose Matches predicate
// accepts token. The second return value is false when no descriptor matches.
func (c Catalog) Lookup(token string) (Descriptor, bool) {
	for _, d := range c {
		if d.Matches(token) {
			return d, true
		}
	}
	return nil, false
}

// Usage returns the concatenated help text of every descriptor, in catalog
// order.
func (c Catalog) Usage() string {
	var sb strings.Builder
	for _, d := range c {
		sb.WriteString(d.HelpText())
	}
	return sb.String()
}
