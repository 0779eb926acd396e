package resolver

import (
	"slices"

	"github.com/shiwano/drivererr"
)

// StrictResolver manages multiple error definitions and resolves them by
// Kind, W3C error code or legacy status.
type StrictResolver struct {
	defs     []*drivererr.Definition
	byKind   map[drivererr.Kind]*drivererr.Definition
	byCode   map[string]*drivererr.Definition
	byStatus map[int]*drivererr.Definition
}

var _ Resolver = (*StrictResolver)(nil)

// WithFallback creates a new FallbackResolver that uses the given definition
// as a fallback when resolution fails.
func (r *StrictResolver) WithFallback(fallback *drivererr.Definition) *FallbackResolver {
	allDefs := append(r.Definitions(), fallback)
	return &FallbackResolver{
		resolver: New(allDefs...),
		fallback: fallback,
	}
}

// Definitions implements Resolver.
func (r *StrictResolver) Definitions() []*drivererr.Definition {
	return slices.Clone(r.defs)
}

// ResolveKindStrict resolves a definition by its Kind.
func (r *StrictResolver) ResolveKindStrict(kind drivererr.Kind) (*drivererr.Definition, bool) {
	def, ok := r.byKind[kind]
	return def, ok
}

// ResolveCodeStrict resolves a definition by its W3C error code.
func (r *StrictResolver) ResolveCodeStrict(code string) (*drivererr.Definition, bool) {
	def, ok := r.byCode[code]
	return def, ok
}

// ResolveStatusStrict resolves a definition by its legacy status.
func (r *StrictResolver) ResolveStatusStrict(status int) (*drivererr.Definition, bool) {
	def, ok := r.byStatus[status]
	return def, ok
}

// ResolveStrictFunc returns the first definition for which match returns true.
func (r *StrictResolver) ResolveStrictFunc(match func(d *drivererr.Definition) bool) (*drivererr.Definition, bool) {
	for _, def := range r.defs {
		if match(def) {
			return def, true // First definition wins
		}
	}
	return nil, false
}
