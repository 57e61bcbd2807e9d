package led

import (
	"sort"
	"time"
)

// Arena owns the drivers of every mounted widget, keyed by widget ID.
// One frame callback advances all of them with Update.
type Arena struct {
	drivers map[string]*Driver
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{drivers: make(map[string]*Driver)}
}

// Mount returns the driver for id, creating it with timing if the widget
// is not mounted yet. Mounting an existing id updates its timing.
func (a *Arena) Mount(id string, timing Timing) *Driver {
	if d, ok := a.drivers[id]; ok {
		d.SetTiming(timing)
		return d
	}
	d := NewDriver(timing)
	a.drivers[id] = d
	return d
}

// Get returns the driver for id.
func (a *Arena) Get(id string) (*Driver, bool) {
	d, ok := a.drivers[id]
	return d, ok
}

// Unmount drops the driver for id. Unknown ids are ignored.
func (a *Arena) Unmount(id string) {
	delete(a.drivers, id)
}

// Update advances every mounted driver by dt.
func (a *Arena) Update(dt time.Duration) {
	for _, d := range a.drivers {
		d.Update(dt)
	}
}

// Animating reports whether any mounted driver needs another frame.
func (a *Arena) Animating() bool {
	for _, d := range a.drivers {
		if d.Animating() {
			return true
		}
	}
	return false
}

// IDs returns the mounted widget ids in sorted order.
func (a *Arena) IDs() []string {
	ids := make([]string, 0, len(a.drivers))
	for id := range a.drivers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of mounted drivers.
func (a *Arena) Len() int {
	return len(a.drivers)
}
