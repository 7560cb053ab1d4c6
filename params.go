package streams

import "context"

// Params configures optional combinator behavior.
type Params struct {
	// Ctx cancels asynchronous work scheduled by the parallel combinators.
	// Nil leaves the work uncancellable.
	Ctx context.Context
	// DeferStart leaves the graph unstarted when binding callbacks, so
	// further callbacks can be attached before the first emission.
	DeferStart bool
}

func applyParams(params []Params) Params {
	var applied Params
	for _, p := range params {
		applied = p
	}
	return applied
}
