package tween

import "slices"

// Group advances animations keyed by what they animate. Adding an
// animation for a key that is already running replaces it.
type Group struct {
	keys   []any
	active map[any]Animation
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{active: make(map[any]Animation)}
}

// Add starts a for key. key should be a comparable value such as a
// pointer to the animated struct.
func (g *Group) Add(key any, a Animation) {
	if _, ok := g.active[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.active[key] = a
}

// Get returns the animation running for key.
func (g *Group) Get(key any) (Animation, bool) {
	a, ok := g.active[key]
	return a, ok
}

// Len is the number of running animations.
func (g *Group) Len() int {
	return len(g.active)
}

// Update advances every animation in insertion order and drops the ones
// that finish. Animations added during the update first run next frame.
func (g *Group) Update(dt float64) {
	for _, k := range slices.Clone(g.keys) {
		a := g.active[k]
		if a.Update(dt) && g.active[k] == a {
			delete(g.active, k)
		}
	}
	g.keys = slices.DeleteFunc(g.keys, func(k any) bool {
		_, ok := g.active[k]
		return !ok
	})
}
