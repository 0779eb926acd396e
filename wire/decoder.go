package wire

import (
	"strconv"

	"github.com/shiwano/drivererr"
	"github.com/shiwano/drivererr/resolver"
)

type (
	// Decoder converts remote-end error responses into enriched errors.
	Decoder struct {
		resolver Resolver
		parse    ParseFunc
		defOpts  []drivererr.Option
	}

	// Resolver provides the definitions responses are resolved against.
	// A *resolver.StrictResolver makes unknown codes fail with ErrCodeNotFound;
	// any other resolver falls back to drivererr.ErrWebDriver.
	Resolver interface {
		Definitions() []*drivererr.Definition
	}

	Option func(*Decoder)
)

// NewDecoder creates a Decoder. A nil resolver means resolver.Default().
func NewDecoder(r Resolver, opts ...Option) *Decoder {
	if r == nil {
		r = resolver.Default()
	}
	d := &Decoder{
		resolver: r,
		parse:    ParseJSON,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithParser replaces the response parser.
func WithParser(parse ParseFunc) Option {
	return func(d *Decoder) {
		d.parse = parse
	}
}

// WithDefinitionOptions applies opts to the definition of every decoded error.
func WithDefinitionOptions(opts ...drivererr.Option) Option {
	return func(d *Decoder) {
		d.defOpts = append(d.defOpts, opts...)
	}
}

// Decode parses data and returns the failure it reports.
// The legacy status, if any, is kept on the returned error and the session
// id is added as an annotation.
func (d *Decoder) Decode(data []byte) (drivererr.Error, error) {
	res, err := d.parse(data)
	if err != nil {
		return nil, ErrDecodeFailure.Wrap(err)
	}
	return d.DecodeResponse(res)
}

// DecodeResponse converts an already parsed response.
// A nil response fails with ErrDecodeFailure.
func (d *Decoder) DecodeResponse(res *Response) (drivererr.Error, error) {
	if res == nil {
		return nil, ErrDecodeFailure.New("nil response")
	}
	def, err := d.resolve(res)
	if err != nil {
		return nil, err
	}

	opts := append([]drivererr.Option{drivererr.NoTrace()}, d.defOpts...)
	if res.SessionID != "" {
		opts = append(opts, drivererr.Session(res.SessionID))
	}
	def = def.WithOptions(opts...)

	cause := newRemoteError(res)
	var decoded error
	if res.HasStatus {
		decoded = def.WrapWithStatus(cause, res.Status, res.Message)
	} else {
		decoded = def.Wrap(cause)
	}
	return decoded.(drivererr.Error), nil
}

func (d *Decoder) resolve(res *Response) (*drivererr.Definition, error) {
	switch r := d.resolver.(type) {
	case *resolver.StrictResolver:
		if res.Code != "" {
			if def, ok := r.ResolveCodeStrict(res.Code); ok {
				return def, nil
			}
			return nil, ErrCodeNotFound.
				WithOptions(drivererr.Info("Code", res.Code)).
				Errorf("code not found: %q", res.Code)
		}
		if def, ok := r.ResolveStatusStrict(res.Status); ok {
			return def, nil
		}
		return nil, ErrCodeNotFound.
			WithOptions(drivererr.Info("Status", strconv.Itoa(res.Status))).
			Errorf("status not found: %d", res.Status)
	case *resolver.FallbackResolver:
		return resolveFallback(r, res), nil
	default:
		return resolveFallback(resolver.New(r.Definitions()...).WithFallback(drivererr.ErrWebDriver), res), nil
	}
}

func resolveFallback(r *resolver.FallbackResolver, res *Response) *drivererr.Definition {
	if res.Code != "" {
		return r.ResolveCode(res.Code)
	}
	return r.ResolveStatus(res.Status)
}
