package params

import (
	"context"

	"github.com/xy-planning-network/trailhead"
)

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Params) context.Context {
	return context.WithValue(ctx, trailhead.ParamsKey, p)
}

// FromContext returns the *Params ctx carries, if any.
func FromContext(ctx context.Context) (*Params, bool) {
	p, ok := ctx.Value(trailhead.ParamsKey).(*Params)
	return p, ok && p != nil
}
