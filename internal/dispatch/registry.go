package dispatch

import (
	"fmt"
	"sort"
	"sync"

	"github.com/grafter-tools/grafter/internal/native"
)

// Registry owns the root of the live dispatch tree and the side table of
// registered top-level labels. Attaching and detaching top-level nodes is
// expected to be serialized by the caller; the side table has its own lock so
// concurrent lookups stay safe.
type Registry struct {
	root *node

	mu         sync.RWMutex
	registered map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		root:       newNode("", true, nil),
		registered: make(map[string]struct{}),
	}
}

func (r *Registry) Root() native.Node { return r.root }

// Register attaches a top-level node and records its label.
func (r *Registry) Register(n native.Node) {
	r.root.AddChild(n)
	r.mu.Lock()
	r.registered[n.Name()] = struct{}{}
	r.mu.Unlock()
}

// Find walks the path from the root, returning nil if any step is missing.
func (r *Registry) Find(path ...string) native.Node {
	var current native.Node = r.root
	for _, name := range path {
		current = current.Child(name)
		if current == nil {
			return nil
		}
	}
	if current == r.root {
		return nil
	}
	return current
}

// Registered reports whether a top-level label is recorded in the side table.
func (r *Registry) Registered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.registered[name]
	return ok
}

// Labels returns the recorded top-level labels, sorted.
func (r *Registry) Labels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.registered))
	for name := range r.registered {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DetachChild implements native.Bookkeeper.
func (r *Registry) DetachChild(name string) error {
	if !r.root.removeChild(name) {
		return fmt.Errorf("no top-level node %q", name)
	}
	return nil
}

// Forget implements native.Bookkeeper.
func (r *Registry) Forget(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.registered[name]; !ok {
		return fmt.Errorf("label %q not recorded", name)
	}
	delete(r.registered, name)
	return nil
}

var (
	_ native.Registry   = (*Registry)(nil)
	_ native.Bookkeeper = (*Registry)(nil)
)
