package resolver

import (
	"slices"

	"github.com/shiwano/drivererr"
)

// FallbackResolver wraps a StrictResolver with fallback functionality,
// returning a fallback definition when resolution fails.
type FallbackResolver struct {
	resolver *StrictResolver
	fallback *drivererr.Definition
}

var _ Resolver = (*FallbackResolver)(nil)

// ResolveKind resolves a definition by its Kind.
// Returns the fallback definition if resolution fails.
func (r *FallbackResolver) ResolveKind(kind drivererr.Kind) *drivererr.Definition {
	if def, ok := r.resolver.ResolveKindStrict(kind); ok {
		return def
	}
	return r.fallback
}

// ResolveCode resolves a definition by its W3C error code.
// Returns the fallback definition if resolution fails.
func (r *FallbackResolver) ResolveCode(code string) *drivererr.Definition {
	if def, ok := r.resolver.ResolveCodeStrict(code); ok {
		return def
	}
	return r.fallback
}

// ResolveStatus resolves a definition by its legacy status.
// Returns the fallback definition if resolution fails.
func (r *FallbackResolver) ResolveStatus(status int) *drivererr.Definition {
	if def, ok := r.resolver.ResolveStatusStrict(status); ok {
		return def
	}
	return r.fallback
}

// ResolveFunc returns the first definition for which match returns true.
// Returns the fallback definition if nothing matches.
func (r *FallbackResolver) ResolveFunc(match func(d *drivererr.Definition) bool) *drivererr.Definition {
	if def, ok := r.resolver.ResolveStrictFunc(match); ok {
		return def
	}
	return r.fallback
}

// Fallback returns the fallback definition.
func (r *FallbackResolver) Fallback() *drivererr.Definition {
	return r.fallback
}

// Strict returns the underlying StrictResolver.
func (r *FallbackResolver) Strict() *StrictResolver {
	return r.resolver
}

// Definitions implements Resolver.
func (r *FallbackResolver) Definitions() []*drivererr.Definition {
	return slices.Clone(r.resolver.defs)
}
