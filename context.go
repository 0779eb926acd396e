package drivererr

import "context"

type contextKey struct{}

var optionsFromContextKey = contextKey{}

// ContextWithOptions adds error options to a context.
// These options will be automatically applied when creating errors
// using Definition.With method.
func ContextWithOptions(ctx context.Context, opts ...Option) context.Context {
	if len(opts) == 0 {
		return ctx
	}
	ctxOpts := optionsFromContext(ctx)
	newOpts := make([]Option, len(ctxOpts)+len(opts))
	copy(newOpts, ctxOpts)
	copy(newOpts[len(ctxOpts):], opts)
	return context.WithValue(ctx, optionsFromContextKey, newOpts)
}

// ContextWithSession is a shorthand for ContextWithOptions(ctx, Session(id)).
func ContextWithSession(ctx context.Context, id string) context.Context {
	return ContextWithOptions(ctx, Session(id))
}

func optionsFromContext(ctx context.Context) []Option {
	if ctx == nil {
		return nil
	}
	rawOpts := ctx.Value(optionsFromContextKey)
	if rawOpts == nil {
		return nil
	}
	opts, ok := rawOpts.([]Option)
	if !ok {
		return nil
	}
	return opts
}
