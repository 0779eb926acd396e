package resolver

import (
	"slices"

	"github.com/shiwano/drivererr"
)

// Resolver provides error definitions for resolution.
type Resolver interface {
	// Definitions returns the definitions this resolver knows about.
	Definitions() []*drivererr.Definition
}

// New creates a new StrictResolver with the given definitions.
// If multiple definitions share a Kind, code or status, the first one wins.
// Canonical statuses take precedence over legacy aliases.
func New(defs ...*drivererr.Definition) *StrictResolver {
	defs = slices.DeleteFunc(slices.Clone(defs), func(d *drivererr.Definition) bool {
		return d == nil
	})
	defs = slices.CompactFunc(defs, func(a, b *drivererr.Definition) bool {
		return a == b
	})

	r := &StrictResolver{
		defs:     defs,
		byKind:   make(map[drivererr.Kind]*drivererr.Definition, len(defs)),
		byCode:   make(map[string]*drivererr.Definition, len(defs)),
		byStatus: make(map[int]*drivererr.Definition, len(defs)),
	}
	for _, d := range defs {
		if _, exists := r.byKind[d.Kind()]; !exists {
			r.byKind[d.Kind()] = d
		}
		if c := d.Code(); c != "" {
			if _, exists := r.byCode[c]; !exists {
				r.byCode[c] = d
			}
		}
		if s, ok := d.Status(); ok {
			if _, exists := r.byStatus[s]; !exists {
				r.byStatus[s] = d
			}
		}
	}
	for _, d := range defs {
		for _, s := range d.LegacyStatuses() {
			if _, exists := r.byStatus[s]; !exists {
				r.byStatus[s] = d
			}
		}
	}
	return r
}

// Default returns a resolver over every predefined kind that falls back to
// drivererr.ErrWebDriver.
func Default() *FallbackResolver {
	return New(drivererr.Definitions()...).WithFallback(drivererr.ErrWebDriver)
}
