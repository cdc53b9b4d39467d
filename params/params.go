package params

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/trailhead/cast"
)

// Params are the parameters bound to a single request.
//
// Params pairs a *Store with the *cast.Caster matching the request's charset.
// Params is safe for concurrent use.
type Params struct {
	store  *Store
	caster *cast.Caster
}

// New merges srcs into the *Params for a request.
// Values are cast by a default *cast.Caster until WithCaster replaces it.
func New(srcs ...Source) *Params {
	return &Params{store: NewStore(srcs...), caster: cast.New()}
}

// WithCaster returns a copy of p casting values with c.
func (p *Params) WithCaster(c *cast.Caster) *Params {
	cp := *p
	cp.caster = c

	return &cp
}

// Store returns the *Store underlying p.
func (p *Params) Store() *Store { return p.store }

// Do executes a Call.
//
// A Get returns the raw value,
// the Get's Default if the key is not set and it has one,
// or else ErrMissingParameter.
// A Has returns a bool and never fails.
func (p *Params) Do(c Call) (any, error) {
	switch c := c.(type) {
	case Get:
		if c.HasDefault {
			return p.GetOr(c.Key, c.Default)
		}

		return p.Get(c.Key)

	case Has:
		return p.Has(c.Key), nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownAccessor, c)
	}
}

// Invoke resolves and executes the accessor name with args.
func (p *Params) Invoke(name string, args ...any) (any, error) {
	c, err := Resolve(name, args...)
	if err != nil {
		return nil, err
	}

	return p.Do(c)
}

// Lookup finds the raw key and value key addresses.
// See (*Store).Lookup.
func (p *Params) Lookup(key string) (rawKey string, value any, ok bool, err error) {
	return p.store.Lookup(key)
}

// Get returns the raw value key addresses, or ErrMissingParameter.
func (p *Params) Get(key string) (any, error) {
	_, v, ok, err := p.store.Lookup(key)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}

	return v, nil
}

// GetOr returns the raw value key addresses, or def.
func (p *Params) GetOr(key string, def any) (any, error) {
	v, err := p.Get(key)
	if errors.Is(err, ErrMissingParameter) {
		return def, nil
	}

	return v, err
}

// Has reports whether key addresses any value.
func (p *Params) Has(key string) bool {
	_, _, ok, _ := p.store.Lookup(key)
	return ok
}

// GetAs casts the value key addresses as t.
func (p *Params) GetAs(key string, t cast.Type) (any, error) {
	v, err := p.Get(key)
	if err != nil {
		return nil, err
	}

	return p.caster.Cast(t, v)
}

// GetAsOr casts the value key addresses as t, or returns def, uncast, if key is not set.
func (p *Params) GetAsOr(key string, t cast.Type, def any) (any, error) {
	v, err := p.Get(key)
	if errors.Is(err, ErrMissingParameter) {
		return def, nil
	}

	if err != nil {
		return nil, err
	}

	return p.caster.Cast(t, v)
}

// Caster returns the *cast.Caster p casts values with.
func (p *Params) Caster() *cast.Caster { return p.caster }

// Keys returns the raw keys in p, in insertion order.
func (p *Params) Keys() []string { return p.store.Keys() }

// Len returns the number of keys in p.
func (p *Params) Len() int { return p.store.Len() }

// Values returns a copy of every raw key and value in p.
func (p *Params) Values() map[string]any { return p.store.Values() }

// String summarizes p.
// See (*Store).String.
func (p *Params) String() string { return p.store.String() }

// Masked summarizes p with secrets masked.
// See (*Store).Masked.
func (p *Params) Masked() string { return p.store.Masked() }
