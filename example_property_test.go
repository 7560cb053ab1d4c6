package streams_test

import (
	"fmt"
	"sync"

	"github.com/bassclefstudio/streams"
	"github.com/bassclefstudio/streams/properties"
)

type dimmer struct {
	properties.Broadcaster
	mu    sync.Mutex
	level int
}

func (d *dimmer) SetLevel(v int) {
	d.mu.Lock()
	d.level = v
	d.mu.Unlock()
	d.Notify("Level")
}

func (d *dimmer) Level() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.level
}

func ExampleProperty() {
	light := &dimmer{}
	light.SetLevel(3)

	levels := streams.Property(streams.Source(light), "Level", (*dimmer).Level)
	streams.BindResult(levels, func(v int) {
		fmt.Println("level:", v)
	})

	light.SetLevel(5)
	light.SetLevel(9)

	// Output:
	// level: 3
	// level: 5
	// level: 9
}

type room struct {
	dimmer *dimmer
}

func ExamplePropertyPath() {
	lounge := &room{dimmer: &dimmer{}}

	registry := properties.NewRegistry()
	properties.Register(registry, "Dimmer", func(r *room) *dimmer { return r.dimmer })
	properties.Register(registry, "Level", (*dimmer).Level)

	levels, err := streams.PropertyPath(streams.Source(lounge), registry, "Dimmer.Level")
	if err != nil {
		fmt.Println("bad path:", err)
		return
	}
	streams.BindResult(levels, func(v any) {
		fmt.Println("level:", v)
	})

	lounge.dimmer.SetLevel(7)

	// Output:
	// level: 0
	// level: 7
}
