package nodes

import (
	"context"
	"time"
)

// DefaultTakeSize is the sliding window length used when none is supplied.
const DefaultTakeSize = 2

// Params are used to pass optional args into node constructors.
type Params struct {
	// Size is the window length for Take nodes. Zero selects DefaultTakeSize.
	Size int
	// Ctx cancels asynchronous work spawned by parallel nodes. Nil selects
	// context.Background.
	Ctx context.Context
}

func applyParams(params []Params) Params {
	applied := Params{}
	for _, param := range params {
		if param.Size > 0 {
			applied.Size = param.Size
		}
		if param.Ctx != nil {
			applied.Ctx = param.Ctx
		}
	}
	return applied
}

func (p Params) size() int {
	if p.Size > 0 {
		return p.Size
	}
	return DefaultTakeSize
}

func (p Params) ctx() context.Context {
	if p.Ctx != nil {
		return p.Ctx
	}
	return context.Background()
}

func validatePeriod(period time.Duration) {
	if period <= 0 {
		panic("nodes: buffer period must be positive")
	}
}
