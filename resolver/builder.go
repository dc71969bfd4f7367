package resolver

import (
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-conf-resolver/options"
)

// Builder assembles a resolved [Settings] mapping in one fluent chain:
//
//	settings, err := resolver.NewBuilder(catalog).
//		WithConfigFile("app.conf").
//		WithArgs(os.Args[1:]).
//		Build()
//
// Each source contributes an overlay of only the entries it actually sets;
// Build merges the overlays onto the catalog defaults in the fixed priority
// order (defaults, then file, then args). Errors from any stage are
// accumulated and surfaced by Build.
type Builder struct {
	catalog  options.Catalog
	overlays []Settings
	err      error
}

// NewBuilder constructs a Builder whose lowest-priority overlay holds every
// catalog descriptor's default value.
func NewBuilder(catalog options.Catalog) *Builder {
	defaults := make(Settings, len(catalog))
	for _, d := range catalog {
		defaults[d] = d.DefaultValue()
	}

	return &Builder{
		catalog:  catalog,
		overlays: append(make([]Settings, 0, 3), defaults),
	}
}

// WithConfigFile parses the key/value file at path into an overlay. A
// non-existent file contributes nothing and is not an error.
func (b *Builder) WithConfigFile(path string) *Builder {
	scratch := b.scratch()
	if _, err := scratch.ReadConfig(path); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.overlays = append(b.overlays, scratch.settings)
	return b
}

// WithArgs processes the argument vector into the highest-priority overlay.
// A help flag in args short-circuits the whole build: Build will return the
// *HelpRequestedError and no settings.
func (b *Builder) WithArgs(args []string) *Builder {
	scratch := b.scratch()
	if err := scratch.ApplyArgumentVector(args); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.overlays = append(b.overlays, scratch.settings)
	return b
}

// Build merges all collected overlays, lowest priority first, and returns
// the final mapping. On any accumulated stage error it returns nil settings;
// a *HelpRequestedError is passed through unwrapped so callers can match it
// directly.
func (b *Builder) Build() (Settings, error) {
	if b.err != nil {
		var help *HelpRequestedError
		if errors.As(b.err, &help) {
			return nil, help
		}
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	merged := make(Settings, len(b.catalog))
	for _, overlay := range b.overlays {
		if err := mergo.Merge(&merged, overlay, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	return merged, nil
}

// scratch returns a resolver over the builder's catalog with an empty
// settings map, so that only entries a source actually touches end up in
// its overlay.
func (b *Builder) scratch() *Resolver {
	return &Resolver{
		catalog:  b.catalog,
		settings: make(Settings),
	}
}
